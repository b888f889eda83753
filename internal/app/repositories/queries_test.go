package repositories

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/edupath/admissions/internal/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingStatusUpdate(t *testing.T) {
	sb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	sql, args, err := pendingStatusUpdate(sb, "applications", 42, models.StatusApproved).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "UPDATE applications SET status = $1 WHERE id = $2 AND status = $3", sql)
	assert.Equal(t, []interface{}{models.StatusApproved, int64(42), models.StatusPending}, args)
}

func TestUniversityListQuery(t *testing.T) {
	repo := NewUniversityRepository(nil)

	t.Run("no filter", func(t *testing.T) {
		sql, args, err := repo.listQuery(models.UniversityFilter{}).ToSql()
		require.NoError(t, err)
		assert.NotContains(t, sql, "WHERE")
		assert.Contains(t, sql, "ORDER BY id ASC")
		assert.Empty(t, args)
	})

	t.Run("search and type", func(t *testing.T) {
		sql, args, err := repo.listQuery(models.UniversityFilter{Search: " dhaka ", Type: models.UniversityPrivate}).ToSql()
		require.NoError(t, err)
		assert.Contains(t, sql, "name ILIKE $1 OR location ILIKE $2")
		assert.Contains(t, sql, "type = $3")
		assert.Equal(t, []interface{}{"%dhaka%", "%dhaka%", models.UniversityPrivate}, args)
	})

	t.Run("blank search ignored", func(t *testing.T) {
		sql, _, err := repo.listQuery(models.UniversityFilter{Search: "   "}).ToSql()
		require.NoError(t, err)
		assert.NotContains(t, sql, "ILIKE")
	})
}

func TestScholarshipSelectUsesLeftJoin(t *testing.T) {
	sql, _, err := NewScholarshipRepository(nil).selectJoined().ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "LEFT JOIN universities u ON u.id = s.university_id")
}
