package repositories

import (
	"github.com/Masterminds/squirrel"
	"github.com/edupath/admissions/internal/app/models"
)

// pendingStatusUpdate builds the conditional decision update shared by the
// ledgers. Zero affected rows means the record was missing or already decided.
func pendingStatusUpdate(sb squirrel.StatementBuilderType, table string, id int64, status models.Status) squirrel.UpdateBuilder {
	return sb.Update(table).
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": models.StatusPending})
}
