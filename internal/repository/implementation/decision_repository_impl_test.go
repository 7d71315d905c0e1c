package implementation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// sqlRecorder captures the SQL gorm renders so the query shape can be
// asserted without a live database.
type sqlRecorder struct {
	statements []string
}

func (r *sqlRecorder) LogMode(gormlogger.LogLevel) gormlogger.Interface { return r }
func (r *sqlRecorder) Info(context.Context, string, ...interface{})     {}
func (r *sqlRecorder) Warn(context.Context, string, ...interface{})     {}
func (r *sqlRecorder) Error(context.Context, string, ...interface{})    {}

func (r *sqlRecorder) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	sql, _ := fc()
	r.statements = append(r.statements, sql)
}

func newDryRunDB(t *testing.T, rec *sqlRecorder) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=test dbname=test",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               rec,
	})
	require.NoError(t, err)
	return db
}

func TestSearchLexicalRankedBranchShape(t *testing.T) {
	rec := &sqlRecorder{}
	repo := NewDecisionRepository(newDryRunDB(t, rec))

	_, err := repo.SearchLexical(context.Background(), "tazminat", 5)
	require.NoError(t, err)
	require.NotEmpty(t, rec.statements)

	ranked := rec.statements[0]
	assert.Contains(t, ranked, "ts_rank")
	assert.Contains(t, ranked, "plainto_tsquery('turkish'")

	// Party and court names are part of the searchable document
	assert.Contains(t, ranked, "coalesce(applicant, '')")
	assert.Contains(t, ranked, "coalesce(court, '')")

	// Rank ties break toward the newest decision
	assert.Contains(t, ranked, "ORDER BY rank DESC, decision_date DESC NULLS LAST")
}

func TestSearchLexicalFallbackBranchShape(t *testing.T) {
	rec := &sqlRecorder{}
	repo := NewDecisionRepository(newDryRunDB(t, rec))

	_, err := repo.SearchLexical(context.Background(), "tazminat", 5)
	require.NoError(t, err)

	// The dry run returns no rows from the ranked branch, so the substring
	// fallback renders as the second statement.
	require.Len(t, rec.statements, 2)
	fallback := rec.statements[1]
	assert.Contains(t, fallback, "title ILIKE")
	assert.Contains(t, fallback, "applicant ILIKE")
	assert.Contains(t, fallback, "court ILIKE")
	assert.Contains(t, fallback, "full_text ILIKE")
	assert.Contains(t, fallback, "decision_date DESC NULLS LAST")
}
