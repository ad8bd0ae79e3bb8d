// Command scdb-inspect replays a recorded sequence of coinbase outputs
// through an SCDB and prints the resulting state. It is a debugging tool,
// never a consensus participant: no persisted state, no network, no
// environment-variable configuration beyond SCDB_DEBUG (telemetry.New).
package main

import "github.com/sidechain-labs/scdb/cmd/scdb-inspect/cmd"

func main() {
	cmd.Execute()
}
