package repository

import (
	"context"
	"time"

	"leafdeals/internal/infra"
	"leafdeals/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DealRepository struct {
	pool *pgxpool.Pool
}

func NewDealRepository(pool *pgxpool.Pool) *DealRepository {
	return &DealRepository{pool: pool}
}

// AcceptedDealRecord is a quality-gated deal ready for persistence.
type AcceptedDealRecord struct {
	SourceID     uuid.UUID
	Category     string
	Title        string
	TitleNorm    string
	Brand        *string
	ProductName  *string
	PriceText    string
	Confidence   float64
	IdentityHash string
	IsValid      bool
	NeedsReview  bool
	ReviewReason *string
	DealDate     time.Time
	CreatedAt    time.Time
}

// ExistsExact reports whether a deal with the same identity hash already
// exists for the source and date.
func (r *DealRepository) ExistsExact(ctx context.Context, sourceID uuid.UUID, identityHash string, dealDate time.Time) (bool, error) {
	const sql = `
SELECT EXISTS (
    SELECT 1 FROM deals
    WHERE source_id = $1 AND identity_hash = $2 AND deal_date = $3::date
)`

	var exists bool
	if err := r.pool.QueryRow(ctx, sql, sourceID, identityHash, dealDate).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check exact duplicate", err)
	}
	return exists, nil
}

// FuzzyPriceTexts returns the price text of every deal for the source whose
// normalized title matches, within the trailing dedup window. The engine
// compares leading numeric prices against these.
func (r *DealRepository) FuzzyPriceTexts(ctx context.Context, sourceID uuid.UUID, titleNorm string, since time.Time) ([]string, error) {
	const sql = `
SELECT price_text FROM deals
WHERE source_id = $1 AND title_norm = $2 AND created_at >= $3`

	rows, err := r.pool.Query(ctx, sql, sourceID, titleNorm, since)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query fuzzy duplicates", err)
	}
	defer rows.Close()

	var prices []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, infra.WrapRepoErr("failed to scan fuzzy duplicate", err)
		}
		prices = append(prices, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read fuzzy duplicates", err)
	}
	return prices, nil
}

// Insert writes an accepted deal and, when flagged, its review flag in one
// transaction so a deal can never be visible without its pending review.
func (r *DealRepository) Insert(ctx context.Context, rec AcceptedDealRecord) (uuid.UUID, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to begin deal transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	const dealSQL = `
INSERT INTO deals (id, source_id, category, title, title_norm, brand, product_name,
                   price_text, confidence, identity_hash, is_valid, needs_review,
                   review_reason, deal_date, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14::date, $15)`

	dealID := uuid.New()
	_, err = tx.Exec(ctx, dealSQL,
		dealID, rec.SourceID, rec.Category, rec.Title, rec.TitleNorm,
		pgconv.StringPtrToPgtype(rec.Brand), pgconv.StringPtrToPgtype(rec.ProductName),
		rec.PriceText, rec.Confidence, rec.IdentityHash, rec.IsValid, rec.NeedsReview,
		pgconv.StringPtrToPgtype(rec.ReviewReason), rec.DealDate, rec.CreatedAt)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert deal", err)
	}

	if rec.NeedsReview {
		const flagSQL = `
INSERT INTO review_flags (id, deal_id, reason, status, created_at)
VALUES ($1, $2, $3, 'pending', $4)`

		reason := ""
		if rec.ReviewReason != nil {
			reason = *rec.ReviewReason
		}
		if _, err := tx.Exec(ctx, flagSQL, uuid.New(), dealID, reason, rec.CreatedAt); err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to insert review flag", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to commit deal transaction", err)
	}
	return dealID, nil
}
