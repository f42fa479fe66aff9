package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/sacco_ledger/internal/apperrors"
	"github.com/SscSPs/sacco_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/sacco_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/sacco_ledger/internal/models"
	"github.com/SscSPs/sacco_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entries and lines.
func newPgxJournalRepository(pool *pgxpool.Pool) *PgxJournalRepository {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

const entryColumns = `e.journal_entry_id, e.transaction_date, e.reference_number, e.description, e.status,
	e.created_at, e.created_by, e.last_updated_at, e.last_updated_by`

const lineColumns = `l.line_id, l.journal_entry_id, l.line_number, l.account_id, a.code, a.name,
	l.member_id, l.debit_amount, l.credit_amount, l.description, l.created_at`

// SaveEntry inserts the entry header and its lines in one transaction. Nothing is
// visible to other sessions unless every row is written. The line accounts are
// share-locked and re-checked for is_active first, so a deactivation either
// commits before the entry and rejects it, or waits for the entry to commit.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Will be ignored if transaction is committed successfully
	defer r.Rollback(ctx, tx) //nolint:errcheck

	if err := lockActiveAccounts(ctx, tx, entry); err != nil {
		return err
	}

	header := mapping.ToModelJournalEntry(entry)
	_, err = tx.Exec(ctx, `
		INSERT INTO journal_entries (
			journal_entry_id, transaction_date, reference_number, description, status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`,
		header.JournalEntryID,
		header.TransactionDate,
		header.ReferenceNumber,
		header.Description,
		header.Status,
		header.CreatedAt,
		header.CreatedBy,
		header.LastUpdatedAt,
		header.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err, constraintEntryReference) {
			return apperrors.NewDuplicateReference(header.ReferenceNumber)
		}
		return apperrors.NewAppError(500, "failed to insert journal entry "+header.ReferenceNumber, err)
	}

	// Lines are queued in draft order so line_number matches the caller's sequence.
	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_entry_lines (
			line_id, journal_entry_id, line_number, account_id, member_id,
			debit_amount, credit_amount, description, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	for _, line := range entry.Lines {
		m := mapping.ToModelJournalEntryLine(line)
		batch.Queue(lineQuery,
			m.LineID,
			m.JournalEntryID,
			m.LineNumber,
			m.AccountID,
			m.MemberID,
			m.DebitAmount,
			m.CreditAmount,
			m.Description,
			m.CreatedAt,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert lines for journal entry "+header.ReferenceNumber, err)
	}

	if err := tx.Commit(ctx); err != nil {
		if isUniqueViolation(err, constraintEntryReference) {
			return apperrors.NewDuplicateReference(header.ReferenceNumber)
		}
		return apperrors.NewAppError(500, "failed to commit journal entry "+header.ReferenceNumber, err)
	}
	return nil
}

func lockActiveAccounts(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry) error {
	ids := make([]string, 0, len(entry.Lines))
	seen := make(map[string]struct{}, len(entry.Lines))
	for _, line := range entry.Lines {
		if _, ok := seen[line.AccountID]; ok {
			continue
		}
		seen[line.AccountID] = struct{}{}
		ids = append(ids, line.AccountID)
	}

	rows, err := tx.Query(ctx, `
		SELECT code, is_active
		FROM accounts
		WHERE account_id = ANY($1)
		ORDER BY account_id
		FOR SHARE;
	`, ids)
	if err != nil {
		return apperrors.NewAppError(500, "failed to lock accounts for journal entry "+entry.ReferenceNumber, err)
	}
	defer rows.Close()

	inactive := ""
	for rows.Next() {
		var code string
		var active bool
		if err := rows.Scan(&code, &active); err != nil {
			return apperrors.NewAppError(500, "failed to scan account state", err)
		}
		if !active && inactive == "" {
			inactive = code
		}
	}
	if err := rows.Err(); err != nil {
		return apperrors.NewAppError(500, "failed to lock accounts for journal entry "+entry.ReferenceNumber, err)
	}
	if inactive != "" {
		return apperrors.NewInactiveAccountViolation(entry.ReferenceNumber, inactive)
	}
	return nil
}

// ExistsByReference reports whether the reference has been committed.
func (r *PgxJournalRepository) ExistsByReference(ctx context.Context, reference string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM journal_entries WHERE reference_number = $1);`, reference).Scan(&exists)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to check reference "+reference, err)
	}
	return exists, nil
}

// FindEntryByReference retrieves an entry with its lines.
func (r *PgxJournalRepository) FindEntryByReference(ctx context.Context, reference string) (*domain.JournalEntry, error) {
	entries, err := r.listEntries(ctx, `WHERE e.reference_number = $1`, reference)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, apperrors.NewNotFound(reference)
	}
	return &entries[0], nil
}

func (r *PgxJournalRepository) ListEntriesByStatus(ctx context.Context, status domain.JournalEntryStatus) ([]domain.JournalEntry, error) {
	return r.listEntries(ctx, `WHERE e.status = $1`, string(status))
}

// ListEntriesByDateRange compares on the DATE column so both bounds are inclusive.
func (r *PgxJournalRepository) ListEntriesByDateRange(ctx context.Context, from, to time.Time) ([]domain.JournalEntry, error) {
	return r.listEntries(ctx, `WHERE e.transaction_date BETWEEN $1::date AND $2::date`, from, to)
}

// listEntries loads headers matching where, then all their lines in a single query.
func (r *PgxJournalRepository) listEntries(ctx context.Context, where string, args ...any) ([]domain.JournalEntry, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+entryColumns+`
		FROM journal_entries e
		`+where+`
		ORDER BY e.transaction_date, e.created_at, e.reference_number;
	`, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal entries", err)
	}
	defer rows.Close()

	var headers []models.JournalEntry
	ids := make([]string, 0)
	for rows.Next() {
		var m models.JournalEntry
		if err := rows.Scan(
			&m.JournalEntryID,
			&m.TransactionDate,
			&m.ReferenceNumber,
			&m.Description,
			&m.Status,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal entry row", err)
		}
		headers = append(headers, m)
		ids = append(ids, m.JournalEntryID)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal entry rows", err)
	}
	if len(headers) == 0 {
		return []domain.JournalEntry{}, nil
	}

	linesByEntry, err := r.findLinesByEntryIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.JournalEntry, len(headers))
	for i, h := range headers {
		entries[i] = mapping.ToDomainJournalEntry(h, linesByEntry[h.JournalEntryID])
	}
	return entries, nil
}

func (r *PgxJournalRepository) findLinesByEntryIDs(ctx context.Context, ids []string) (map[string][]domain.JournalEntryLine, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+lineColumns+`
		FROM journal_entry_lines l
		JOIN accounts a ON a.account_id = l.account_id
		WHERE l.journal_entry_id = ANY($1)
		ORDER BY l.journal_entry_id, l.line_number;
	`, ids)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal entry lines", err)
	}
	defer rows.Close()

	out := make(map[string][]domain.JournalEntryLine, len(ids))
	for rows.Next() {
		m, err := scanLine(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal entry line", err)
		}
		out[m.JournalEntryID] = append(out[m.JournalEntryID], mapping.ToDomainJournalEntryLine(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal entry lines", err)
	}
	return out, nil
}

func scanLine(row pgx.Row, extra ...any) (models.JournalEntryLine, error) {
	var m models.JournalEntryLine
	dest := []any{
		&m.LineID,
		&m.JournalEntryID,
		&m.LineNumber,
		&m.AccountID,
		&m.AccountCode,
		&m.AccountName,
		&m.MemberID,
		&m.DebitAmount,
		&m.CreditAmount,
		&m.Description,
		&m.CreatedAt,
	}
	err := row.Scan(append(dest, extra...)...)
	return m, err
}

func (r *PgxJournalRepository) ListLinesByMember(ctx context.Context, memberID string) ([]domain.LedgerLine, error) {
	return r.listLedgerLines(ctx, `l.member_id = $1`, memberID)
}

func (r *PgxJournalRepository) ListLinesByAccountCode(ctx context.Context, code string) ([]domain.LedgerLine, error) {
	return r.listLedgerLines(ctx, `a.code = $1`, code)
}

// listLedgerLines returns posted lines joined with their entry header, oldest first.
func (r *PgxJournalRepository) listLedgerLines(ctx context.Context, predicate string, arg any) ([]domain.LedgerLine, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+lineColumns+`, e.reference_number, e.transaction_date
		FROM journal_entry_lines l
		JOIN journal_entries e ON e.journal_entry_id = l.journal_entry_id
		JOIN accounts a ON a.account_id = l.account_id
		WHERE e.status = 'POSTED' AND `+predicate+`
		ORDER BY e.transaction_date, e.created_at, l.line_number;
	`, arg)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger lines", err)
	}
	defer rows.Close()

	lines := make([]domain.LedgerLine, 0)
	for rows.Next() {
		var ref string
		var date time.Time
		m, err := scanLine(rows, &ref, &date)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger line", err)
		}
		lines = append(lines, domain.LedgerLine{
			JournalEntryLine: mapping.ToDomainJournalEntryLine(m),
			ReferenceNumber:  ref,
			TransactionDate:  date,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger lines", err)
	}
	return lines, nil
}

// GetTrialBalanceData sums posted lines per account up to and including asOf.
// Accounts with no activity are omitted.
func (r *PgxJournalRepository) GetTrialBalanceData(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT a.account_id, a.code, a.name, a.account_type,
		       COALESCE(SUM(l.debit_amount), 0), COALESCE(SUM(l.credit_amount), 0)
		FROM journal_entry_lines l
		JOIN journal_entries e ON e.journal_entry_id = l.journal_entry_id
		JOIN accounts a ON a.account_id = l.account_id
		WHERE e.status = 'POSTED' AND e.transaction_date <= $1::date
		GROUP BY a.account_id, a.code, a.name, a.account_type
		ORDER BY a.code;
	`, asOf)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query trial balance", err)
	}
	defer rows.Close()

	var out []domain.TrialBalanceRow
	for rows.Next() {
		var row domain.TrialBalanceRow
		var accountType string
		if err := rows.Scan(&row.AccountID, &row.AccountCode, &row.AccountName, &accountType, &row.Debit, &row.Credit); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan trial balance row", err)
		}
		row.AccountType = domain.AccountType(accountType)
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating trial balance rows", err)
	}
	return out, nil
}

