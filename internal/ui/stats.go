package ui

import "sync/atomic"

type Stats struct {
	Renamed atomic.Int64
	Failed  atomic.Int64
}
