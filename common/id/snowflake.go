// Package id generates snowflake IDs. Every entity row gets one, so IDs
// sort by creation time and stay unique across the server and worker
// processes as long as each is initialized with its own node ID.
package id

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init sets up the process-wide node. Call once at startup, before any
// New; the server and the worker must pass distinct node IDs.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

func New() int64 {
	return node.Generate().Int64()
}
