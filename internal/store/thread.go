package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Thread names a table whose rows form a tree through a nullable self reference.
type Thread struct {
	Table  string
	Parent string
}

var (
	MessageThread = Thread{Table: "messages", Parent: "reply_to_message_id"}
	AdviceThread  = Thread{Table: "advice_comments", Parent: "parent_comment_id"}
)

// CheckThreadParent returns ErrThreadCycle if making parentID the parent of id
// would put id among its own ancestors. The store accepts such rows, so callers
// check before writing the self reference.
func (e *Engine) CheckThreadParent(ctx context.Context, th Thread, id, parentID int64) error {
	const op = "check thread parent"
	db, err := e.handle(op)
	if err != nil {
		return err
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = %s", th.Parent, th.Table, e.dialect.Placeholder(1))
	seen := map[int64]bool{}
	for cur := parentID; ; {
		if cur == id || seen[cur] {
			return fmt.Errorf("%s %d under %d: %w", th.Table, id, parentID, ErrThreadCycle)
		}
		seen[cur] = true

		var next sql.NullInt64
		err := db.QueryRowContext(ctx, query, cur).Scan(&next)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%s %d: parent %d not found", th.Table, id, cur)
		}
		if err != nil {
			return failure(ctx, db, op, th.Table, query, err)
		}
		if !next.Valid {
			return nil
		}
		cur = next.Int64
	}
}
