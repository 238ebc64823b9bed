package status

import (
	"context"
	"fmt"
	"time"

	"github.com/narust/reasoner/internal/reasoner"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Neo4jExporter is an optional, export-only sink for the belief network:
// concepts become `:Concept` nodes keyed by their term's canonical string,
// and a concept's outward term-links become typed relationships to their
// target concept. It never participates in SAV/LOA round-tripping — §6.4's
// atomicity guarantee holds regardless of whether this export succeeds —
// adapted from the teacher's Neo4jClient/GraphStore managed-transaction
// pattern (ExecuteWrite over a Cypher MERGE, not a raw CREATE, since a
// concept is re-exported on every call rather than created once).
type Neo4jExporter struct {
	driver   neo4j.DriverWithContext
	database string
	timeout  time.Duration
}

// NewNeo4jExporter opens a driver against uri and verifies connectivity.
func NewNeo4jExporter(uri, username, password, database string) (*Neo4jExporter, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("status: neo4j driver: %w", err)
	}
	timeout := 5 * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("status: neo4j connectivity: %w", err)
	}
	return &Neo4jExporter{driver: driver, database: database, timeout: timeout}, nil
}

// Close releases the driver.
func (e *Neo4jExporter) Close(ctx context.Context) error { return e.driver.Close(ctx) }

// Export writes every concept in r's memory and its outward term-links to
// the graph, best-effort: a single concept's failure is returned but does
// not roll back concepts already written, since this is a visualization
// aid rather than part of the persisted-state contract.
func (e *Neo4jExporter) Export(ctx context.Context, r *reasoner.Reasoner) error {
	session := e.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: e.database, AccessMode: neo4j.AccessModeWrite})
	defer func() { _ = session.Close(ctx) }()

	for _, c := range r.Memory.All() {
		_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
			_, err := tx.Run(ctx, `
				MERGE (c:Concept {term: $term})
				SET c.priority = $priority, c.belief_count = $beliefs, c.question_count = $questions
			`, map[string]any{
				"term":      c.Term.String(),
				"priority":  c.Budget.P.Float64(),
				"beliefs":   len(c.Beliefs),
				"questions": len(c.Questions),
			})
			return nil, err
		})
		if err != nil {
			return fmt.Errorf("status: export concept %q: %w", c.Key(), err)
		}

		for _, tl := range c.TermLinks.Items() {
			relType := tl.Template.Type.String()
			_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
				_, err := tx.Run(ctx, fmt.Sprintf(`
					MERGE (a:Concept {term: $from})
					MERGE (b:Concept {term: $to})
					MERGE (a)-[r:%s]->(b)
					SET r.priority = $priority
				`, sanitizeRelType(relType)), map[string]any{
					"from":     c.Term.String(),
					"to":       tl.Template.Target,
					"priority": tl.Budget.P.Float64(),
				})
				return nil, err
			})
			if err != nil {
				return fmt.Errorf("status: export link %q -> %q: %w", c.Key(), tl.Template.Target, err)
			}
		}
	}
	return nil
}

// sanitizeRelType upper-cases a link type name into a valid, unquoted
// Cypher relationship type token.
func sanitizeRelType(t string) string {
	out := make([]rune, 0, len(t))
	for _, r := range t {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return "RELATED"
	}
	return string(out)
}
