// Package graph defines the minimal interface a graph query engine
// must implement to run under the TCK scaffold. No engine lives in
// this repository; StubDatabase is the placeholder an implementer
// replaces with their backend.
package graph

// SideEffects tracks graph mutations caused by a query.
type SideEffects struct {
	NodesCreated         int
	NodesDeleted         int
	RelationshipsCreated int
	RelationshipsDeleted int
	PropertiesSet        int
	LabelsAdded          int
	LabelsRemoved        int
}

// ToMap converts to the +nodes/-nodes map form the TCK side-effect
// tables use. Zero counters are omitted.
func (s SideEffects) ToMap() map[string]int {
	out := map[string]int{}
	if s.NodesCreated > 0 {
		out["+nodes"] = s.NodesCreated
	}
	if s.NodesDeleted > 0 {
		out["-nodes"] = s.NodesDeleted
	}
	if s.RelationshipsCreated > 0 {
		out["+relationships"] = s.RelationshipsCreated
	}
	if s.RelationshipsDeleted > 0 {
		out["-relationships"] = s.RelationshipsDeleted
	}
	if s.PropertiesSet > 0 {
		out["+properties"] = s.PropertiesSet
	}
	if s.LabelsAdded > 0 {
		out["+labels"] = s.LabelsAdded
	}
	if s.LabelsRemoved > 0 {
		out["-labels"] = s.LabelsRemoved
	}
	return out
}

// HasNoEffects reports whether every counter is zero.
func (s SideEffects) HasNoEffects() bool {
	return s == SideEffects{}
}

// Node is a graph node.
type Node struct {
	ID         int64
	Labels     map[string]bool
	Properties map[string]any
}

// Relationship is a directed, typed edge between two nodes.
type Relationship struct {
	ID          int64
	StartNodeID int64
	EndNodeID   int64
	Type        string
	Properties  map[string]any
}

// QueryResult is the outcome of executing one Cypher query.
type QueryResult struct {
	Columns     []string
	Rows        []map[string]any
	SideEffects SideEffects
}

// IsEmpty reports whether the result set has no rows.
func (r QueryResult) IsEmpty() bool {
	return len(r.Rows) == 0
}

// Database is the contract a graph query engine implements to run
// under the TCK scaffold.
type Database interface {
	// Clear removes all data from the graph.
	Clear()

	// ExecuteQuery runs a Cypher query and returns its results and
	// side effects.
	ExecuteQuery(query string, parameters map[string]any) (QueryResult, error)

	// IsEmpty reports whether the graph has no nodes or relationships.
	IsEmpty() bool
}

// StubDatabase is a do-nothing Database for exercising the scaffold
// itself. Replace it with a real engine.
type StubDatabase struct {
	empty bool
}

// NewStubDatabase creates an empty stub.
func NewStubDatabase() *StubDatabase {
	return &StubDatabase{empty: true}
}

func (d *StubDatabase) Clear() {
	d.empty = true
}

// ExecuteQuery returns empty results.
//
// TODO: delegate to a real query engine once one exists.
func (d *StubDatabase) ExecuteQuery(query string, parameters map[string]any) (QueryResult, error) {
	return QueryResult{}, nil
}

func (d *StubDatabase) IsEmpty() bool {
	return d.empty
}
