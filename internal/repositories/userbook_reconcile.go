package repositories

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"
)

// bridge is a many-to-many table holding only the (owner, member) pair.
type bridge struct {
	table        string
	ownerColumn  string
	memberColumn string
}

var (
	genreBridge      = bridge{table: tableUserBookGenres, ownerColumn: "user_book_id", memberColumn: "genre_id"}
	collectionBridge = bridge{table: tableUserBookCollections, ownerColumn: "user_book_id", memberColumn: "collection_id"}
)

// diffIDs returns desired minus existing and existing minus desired.
// Order follows the input slices; duplicates are ignored.
func diffIDs(existing, desired []string) (added, removed []string) {
	existingSet := toSet(existing)
	desiredSet := toSet(desired)

	emitted := make(map[string]struct{}, len(desired))
	for _, id := range desired {
		if _, ok := existingSet[id]; ok {
			continue
		}
		if !seen(emitted, id) {
			added = append(added, id)
		}
	}

	emitted = make(map[string]struct{}, len(existing))
	for _, id := range existing {
		if _, ok := desiredSet[id]; ok {
			continue
		}
		if !seen(emitted, id) {
			removed = append(removed, id)
		}
	}

	return added, removed
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// insertQuery bulk inserts pairs; an existing pair is merged instead of failing.
// Repeated member ids collapse to one row, since ON CONFLICT DO UPDATE cannot
// touch the same row twice in one statement.
func (b bridge) insertQuery(ownerID string, memberIDs []string) *goqu.InsertDataset {
	memberIDs, _ = diffIDs(nil, memberIDs)
	rows := make([][]interface{}, 0, len(memberIDs))
	for _, memberID := range memberIDs {
		rows = append(rows, goqu.Vals{ownerID, memberID})
	}

	return builder.Insert(b.table).
		Cols(b.ownerColumn, b.memberColumn).
		Vals(rows...).
		OnConflict(goqu.DoUpdate(
			b.ownerColumn+", "+b.memberColumn,
			goqu.Record{b.memberColumn: goqu.L("EXCLUDED." + b.memberColumn)},
		)).
		Prepared(true)
}

func (b bridge) deleteQuery(ownerID string, memberIDs []string) *goqu.DeleteDataset {
	return builder.Delete(b.table).
		Where(
			goqu.C(b.ownerColumn).Eq(ownerID),
			goqu.C(b.memberColumn).In(memberIDs),
		).
		Prepared(true)
}

func (b bridge) insert(ctx context.Context, exec sqlx.ExecerContext, ownerID string, memberIDs []string) error {
	if len(memberIDs) == 0 {
		return nil
	}
	_, err := execStmt(ctx, exec, b.insertQuery(ownerID, memberIDs))
	return err
}

func (b bridge) delete(ctx context.Context, exec sqlx.ExecerContext, ownerID string, memberIDs []string) error {
	if len(memberIDs) == 0 {
		return nil
	}
	_, err := execStmt(ctx, exec, b.deleteQuery(ownerID, memberIDs))
	return err
}

// reconcile brings the owner's members from existing to desired touching
// only the symmetric difference.
func (b bridge) reconcile(ctx context.Context, exec sqlx.ExecerContext, ownerID string, existing, desired []string) error {
	added, removed := diffIDs(existing, desired)
	if err := b.insert(ctx, exec, ownerID, added); err != nil {
		return err
	}
	return b.delete(ctx, exec, ownerID, removed)
}
