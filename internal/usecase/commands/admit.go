package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"leafdeals/internal/domain/deal"
	"leafdeals/internal/infra/repository"
	"leafdeals/internal/pkg/clock"
	"leafdeals/internal/pkg/config"
	"leafdeals/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrDealPersistFailed = errs.New("failed to persist deal")

// Review reason codes. Multiple triggered reasons are comma-joined.
const (
	ReasonLowConfidence    = "low_confidence"
	ReasonUnusualPriceHigh = "unusual_price_high"
	ReasonUnusualPriceLow  = "unusual_price_low"
	ReasonCategoryMismatch = "category_mismatch"
)

type AdmitOutcome int

const (
	// OutcomeAccepted: persisted, clean or flagged for review.
	OutcomeAccepted AdmitOutcome = iota
	// OutcomeDuplicate: exact or fuzzy duplicate, nothing persisted.
	OutcomeDuplicate
	// OutcomeBelowFloor: below the low-confidence floor, not persisted as a
	// structured deal. Batch-level policy may emit one summary placeholder.
	OutcomeBelowFloor
)

type AdmitResult struct {
	Outcome      AdmitOutcome
	IdentityHash string
	NeedsReview  bool
	Reason       *string
}

// SourceContext attributes a candidate to the source it was extracted from.
type SourceContext struct {
	ID   uuid.UUID
	Name string
}

// AdmissionCommands is the dedup/quality gate every candidate passes through
// before persistence.
type AdmissionCommands interface {
	Admit(ctx context.Context, cand deal.Candidate, src SourceContext) (AdmitResult, error)
	AdmitBatch(ctx context.Context, cands []deal.Candidate, src SourceContext) (int, error)
}

type admissionCommandsImpl struct {
	deals DealRepository
	cfg   config.QualityConfig
	clock clock.Clock
}

func NewAdmissionCommands(deals DealRepository, cfg config.QualityConfig, clk clock.Clock) AdmissionCommands {
	return &admissionCommandsImpl{deals: deals, cfg: cfg, clock: clk}
}

// Admit runs the admission pipeline for one candidate: identity hash, exact
// and fuzzy duplicate checks, confidence gate, heuristic checks. Duplicates
// and data-quality violations are normal outcomes, not errors; only
// persistence failures return an error.
func (a *admissionCommandsImpl) Admit(ctx context.Context, cand deal.Candidate, src SourceContext) (AdmitResult, error) {
	now := a.clock.Now()
	titleNorm := deal.NormalizeTitle(cand.Title)
	hash := deal.IdentityHash(src.Name, cand.Title, cand.PriceText, now)

	exists, err := a.deals.ExistsExact(ctx, src.ID, hash, now)
	if err != nil {
		return AdmitResult{}, errs.Mark(err, ErrDealPersistFailed)
	}
	if exists {
		return AdmitResult{Outcome: OutcomeDuplicate, IdentityHash: hash}, nil
	}

	dup, err := a.isFuzzyDuplicate(ctx, src.ID, titleNorm, cand.PriceText, now)
	if err != nil {
		return AdmitResult{}, errs.Mark(err, ErrDealPersistFailed)
	}
	if dup {
		return AdmitResult{Outcome: OutcomeDuplicate, IdentityHash: hash}, nil
	}

	if cand.Confidence < a.cfg.LowConfidenceFloor {
		return AdmitResult{Outcome: OutcomeBelowFloor, IdentityHash: hash}, nil
	}

	reasons := a.reviewReasons(cand)
	var reason *string
	if len(reasons) > 0 {
		joined := strings.Join(reasons, ",")
		reason = &joined
	}

	brand, product := deal.SplitBrand(cand)
	rec := repository.AcceptedDealRecord{
		SourceID:     src.ID,
		Category:     deal.CanonicalCategory(cand.Category),
		Title:        cand.Title,
		TitleNorm:    titleNorm,
		PriceText:    cand.PriceText,
		Confidence:   cand.Confidence,
		IdentityHash: hash,
		IsValid:      true,
		NeedsReview:  reason != nil,
		ReviewReason: reason,
		DealDate:     now,
		CreatedAt:    now,
	}
	if brand != "" {
		rec.Brand = &brand
	}
	if product != "" {
		rec.ProductName = &product
	}

	if _, err := a.deals.Insert(ctx, rec); err != nil {
		return AdmitResult{}, errs.Mark(err, ErrDealPersistFailed)
	}

	return AdmitResult{
		Outcome:      OutcomeAccepted,
		IdentityHash: hash,
		NeedsReview:  rec.NeedsReview,
		Reason:       reason,
	}, nil
}

// AdmitBatch admits every candidate from one extraction run. Candidates
// below the low-confidence floor collapse into at most one source-level
// summary placeholder, so activity is signaled without publishing
// unreliable structure. Returns the number of rows inserted.
func (a *admissionCommandsImpl) AdmitBatch(ctx context.Context, cands []deal.Candidate, src SourceContext) (int, error) {
	inserted := 0
	belowFloor := 0

	for _, cand := range cands {
		res, err := a.Admit(ctx, cand, src)
		if err != nil {
			return inserted, err
		}
		switch res.Outcome {
		case OutcomeAccepted:
			inserted++
		case OutcomeBelowFloor:
			belowFloor++
		case OutcomeDuplicate:
			slog.Debug("duplicate candidate rejected", "source", src.Name, "hash", res.IdentityHash)
		}
	}

	if belowFloor > 0 {
		n, err := a.insertPlaceholder(ctx, src)
		if err != nil {
			return inserted, err
		}
		inserted += n
	}
	return inserted, nil
}

func (a *admissionCommandsImpl) insertPlaceholder(ctx context.Context, src SourceContext) (int, error) {
	now := a.clock.Now()
	ph := deal.Placeholder()
	hash := deal.IdentityHash(src.Name, ph.Title, ph.PriceText, now)

	exists, err := a.deals.ExistsExact(ctx, src.ID, hash, now)
	if err != nil {
		return 0, errs.Mark(err, ErrDealPersistFailed)
	}
	if exists {
		return 0, nil
	}

	rec := repository.AcceptedDealRecord{
		SourceID:     src.ID,
		Category:     ph.Category,
		Title:        ph.Title,
		TitleNorm:    deal.NormalizeTitle(ph.Title),
		PriceText:    ph.PriceText,
		Confidence:   ph.Confidence,
		IdentityHash: hash,
		IsValid:      false, // placeholder, not a structured deal
		NeedsReview:  false,
		DealDate:     now,
		CreatedAt:    now,
	}
	if _, err := a.deals.Insert(ctx, rec); err != nil {
		return 0, errs.Mark(err, ErrDealPersistFailed)
	}
	return 1, nil
}

func (a *admissionCommandsImpl) isFuzzyDuplicate(ctx context.Context, sourceID uuid.UUID, titleNorm, priceText string, now time.Time) (bool, error) {
	price, hasPrice := deal.LeadingPrice(priceText)

	priorPrices, err := a.deals.FuzzyPriceTexts(ctx, sourceID, titleNorm, now.Add(-a.cfg.DedupWindow))
	if err != nil {
		return false, err
	}
	for _, prior := range priorPrices {
		priorPrice, priorHas := deal.LeadingPrice(prior)
		if hasPrice == priorHas && (!hasPrice || price == priorPrice) {
			return true, nil
		}
	}
	return false, nil
}

// reviewReasons applies the confidence gate and heuristic checks. Any
// triggered heuristic forces needs_review even when confidence alone would
// not have required it.
func (a *admissionCommandsImpl) reviewReasons(cand deal.Candidate) []string {
	var reasons []string

	if cand.Confidence < a.cfg.HighConfidenceFloor {
		reasons = append(reasons, ReasonLowConfidence)
	}

	if price, ok := deal.LeadingPrice(cand.PriceText); ok {
		if price > a.cfg.PriceHighCeiling {
			reasons = append(reasons, ReasonUnusualPriceHigh)
		} else if price > 0 && price < a.cfg.PriceLowFloor {
			reasons = append(reasons, ReasonUnusualPriceLow)
		}
	}

	if !deal.TitleMatchesCategory(cand.Title, cand.Category) {
		reasons = append(reasons, ReasonCategoryMismatch)
	}

	return reasons
}
