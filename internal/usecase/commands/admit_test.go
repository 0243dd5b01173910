//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"leafdeals/internal/domain/deal"
	"leafdeals/internal/infra/repository"
	"leafdeals/internal/pkg/clock"
	"leafdeals/internal/pkg/config"
	"leafdeals/internal/usecase/commands"
	commandsmock "leafdeals/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdmissionTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockDeals *commandsmock.MockDealRepository
	clock     *clock.MockClock
	admission commands.AdmissionCommands
	src       commands.SourceContext
}

func (s *AdmissionTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockDeals = commandsmock.NewMockDealRepository(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC))
	s.admission = commands.NewAdmissionCommands(s.mockDeals, config.NewTestConfig().Quality, s.clock)
	s.src = commands.SourceContext{ID: uuid.New(), Name: "Green Door Detroit"}
}

func (s *AdmissionTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdmissionSuite(t *testing.T) {
	suite.Run(t, new(AdmissionTestSuite))
}

func (s *AdmissionTestSuite) expectNoDuplicates() {
	s.mockDeals.EXPECT().ExistsExact(gomock.Any(), s.src.ID, gomock.Any(), gomock.Any()).
		Return(false, nil)
	s.mockDeals.EXPECT().FuzzyPriceTexts(gomock.Any(), s.src.ID, gomock.Any(), gomock.Any()).
		Return(nil, nil)
}

func (s *AdmissionTestSuite) captureInsert(captured *repository.AcceptedDealRecord) {
	s.mockDeals.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec repository.AcceptedDealRecord) (uuid.UUID, error) {
			*captured = rec
			return uuid.New(), nil
		})
}

func (s *AdmissionTestSuite) TestCleanCandidateAccepted() {
	s.expectNoDuplicates()
	var rec repository.AcceptedDealRecord
	s.captureInsert(&rec)

	res, err := s.admission.Admit(context.Background(), deal.Candidate{
		Category:   "flower",
		Title:      "OG Kush Eighth Special",
		PriceText:  "$25",
		Confidence: 0.92,
	}, s.src)

	s.Require().NoError(err)
	s.Equal(commands.OutcomeAccepted, res.Outcome)
	s.False(res.NeedsReview)
	s.Nil(res.Reason)
	s.Equal("flower", rec.Category)
	s.True(rec.IsValid)
	s.False(rec.NeedsReview)
	s.Equal(res.IdentityHash, rec.IdentityHash)
	s.Equal("og kush eighth special", rec.TitleNorm)
}

func (s *AdmissionTestSuite) TestExactDuplicateRejected() {
	s.mockDeals.EXPECT().ExistsExact(gomock.Any(), s.src.ID, gomock.Any(), gomock.Any()).
		Return(true, nil)

	res, err := s.admission.Admit(context.Background(), deal.Candidate{
		Category:   "flower",
		Title:      "OG Kush Eighth Special",
		PriceText:  "$25",
		Confidence: 0.92,
	}, s.src)

	s.Require().NoError(err)
	s.Equal(commands.OutcomeDuplicate, res.Outcome)
}

func (s *AdmissionTestSuite) TestFuzzyDuplicateSameTitleSamePrice() {
	s.mockDeals.EXPECT().ExistsExact(gomock.Any(), s.src.ID, gomock.Any(), gomock.Any()).
		Return(false, nil)
	// Different price text, same leading amount: still the same offer.
	s.mockDeals.EXPECT().FuzzyPriceTexts(gomock.Any(), s.src.ID, "og kush eighth special", gomock.Any()).
		Return([]string{"25 bucks flat"}, nil)

	res, err := s.admission.Admit(context.Background(), deal.Candidate{
		Category:   "flower",
		Title:      "OG Kush Eighth Special",
		PriceText:  "$25.00 / eighth",
		Confidence: 0.92,
	}, s.src)

	s.Require().NoError(err)
	s.Equal(commands.OutcomeDuplicate, res.Outcome)
}

func (s *AdmissionTestSuite) TestFuzzyNonDuplicateDifferentPrice() {
	s.expectNoDuplicates()
	var rec repository.AcceptedDealRecord
	s.captureInsert(&rec)

	res, err := s.admission.Admit(context.Background(), deal.Candidate{
		Category:   "flower",
		Title:      "OG Kush Eighth Special",
		PriceText:  "$30",
		Confidence: 0.92,
	}, s.src)

	s.Require().NoError(err)
	s.Equal(commands.OutcomeAccepted, res.Outcome)
}

func (s *AdmissionTestSuite) TestBelowFloorNotPersisted() {
	s.mockDeals.EXPECT().ExistsExact(gomock.Any(), s.src.ID, gomock.Any(), gomock.Any()).
		Return(false, nil)
	s.mockDeals.EXPECT().FuzzyPriceTexts(gomock.Any(), s.src.ID, gomock.Any(), gomock.Any()).
		Return(nil, nil)

	res, err := s.admission.Admit(context.Background(), deal.Candidate{
		Category:   "flower",
		Title:      "maybe a deal",
		PriceText:  "$25",
		Confidence: 0.3,
	}, s.src)

	s.Require().NoError(err)
	s.Equal(commands.OutcomeBelowFloor, res.Outcome)
}

func (s *AdmissionTestSuite) TestMidConfidenceFlaggedForReview() {
	s.expectNoDuplicates()
	var rec repository.AcceptedDealRecord
	s.captureInsert(&rec)

	res, err := s.admission.Admit(context.Background(), deal.Candidate{
		Category:   "flower",
		Title:      "OG Kush Eighth Special",
		PriceText:  "$25",
		Confidence: 0.6,
	}, s.src)

	s.Require().NoError(err)
	s.Equal(commands.OutcomeAccepted, res.Outcome)
	s.True(res.NeedsReview)
	s.Require().NotNil(res.Reason)
	s.Equal("low_confidence", *res.Reason)
	s.True(rec.IsValid)
	s.True(rec.NeedsReview)
}

func (s *AdmissionTestSuite) TestUnusualPriceHigh() {
	s.expectNoDuplicates()
	var rec repository.AcceptedDealRecord
	s.captureInsert(&rec)

	res, err := s.admission.Admit(context.Background(), deal.Candidate{
		Category:   "flower",
		Title:      "Premium Oz Bundle",
		PriceText:  "$500",
		Confidence: 0.95,
	}, s.src)

	s.Require().NoError(err)
	s.Require().NotNil(res.Reason)
	s.Equal("unusual_price_high", *res.Reason)
}

func (s *AdmissionTestSuite) TestUnusualPriceLow() {
	s.expectNoDuplicates()
	var rec repository.AcceptedDealRecord
	s.captureInsert(&rec)

	res, err := s.admission.Admit(context.Background(), deal.Candidate{
		Category:   "flower",
		Title:      "Penny Gram Promo",
		PriceText:  "$0.50",
		Confidence: 0.95,
	}, s.src)

	s.Require().NoError(err)
	s.Require().NotNil(res.Reason)
	s.Equal("unusual_price_low", *res.Reason)
}

func (s *AdmissionTestSuite) TestCategoryMismatch() {
	s.expectNoDuplicates()
	var rec repository.AcceptedDealRecord
	s.captureInsert(&rec)

	// Labeled edibles but the title reads like flower copy.
	res, err := s.admission.Admit(context.Background(), deal.Candidate{
		Category:   "edibles",
		Title:      "OG Kush Sativa Special",
		PriceText:  "$25",
		Confidence: 0.95,
	}, s.src)

	s.Require().NoError(err)
	s.Require().NotNil(res.Reason)
	s.Equal("category_mismatch", *res.Reason)
}

func (s *AdmissionTestSuite) TestMultipleReasonsCommaJoined() {
	s.expectNoDuplicates()
	var rec repository.AcceptedDealRecord
	s.captureInsert(&rec)

	res, err := s.admission.Admit(context.Background(), deal.Candidate{
		Category:   "flower",
		Title:      "Premium Oz Bundle",
		PriceText:  "$500",
		Confidence: 0.6,
	}, s.src)

	s.Require().NoError(err)
	s.Require().NotNil(res.Reason)
	s.Equal("low_confidence,unusual_price_high", *res.Reason)
}

func (s *AdmissionTestSuite) TestStructuredBrandWins() {
	s.expectNoDuplicates()
	var rec repository.AcceptedDealRecord
	s.captureInsert(&rec)

	_, err := s.admission.Admit(context.Background(), deal.Candidate{
		Category:   "vapes",
		Title:      "Stiiizy - OG Kush Cart 1g",
		Brand:      "STIIIZY",
		PriceText:  "$35",
		Confidence: 0.9,
	}, s.src)

	s.Require().NoError(err)
	s.Require().NotNil(rec.Brand)
	s.Equal("STIIIZY", *rec.Brand)
}

func (s *AdmissionTestSuite) TestTitlePrefixBrandFallback() {
	s.expectNoDuplicates()
	var rec repository.AcceptedDealRecord
	s.captureInsert(&rec)

	_, err := s.admission.Admit(context.Background(), deal.Candidate{
		Category:   "vapes",
		Title:      "Stiiizy - OG Kush Cart 1g",
		PriceText:  "$35",
		Confidence: 0.9,
	}, s.src)

	s.Require().NoError(err)
	s.Require().NotNil(rec.Brand)
	s.Equal("Stiiizy", *rec.Brand)
	s.Require().NotNil(rec.ProductName)
	s.Equal("OG Kush Cart 1g", *rec.ProductName)
}

func (s *AdmissionTestSuite) TestBatchCollapsesBelowFloorToOnePlaceholder() {
	lowConf := []deal.Candidate{
		{Category: "flower", Title: "blurry row one", PriceText: "$10", Confidence: 0.2},
		{Category: "flower", Title: "blurry row two", PriceText: "$12", Confidence: 0.1},
		{Category: "flower", Title: "blurry row three", PriceText: "$14", Confidence: 0.3},
	}

	// Per-candidate dedup checks, then one placeholder check.
	s.mockDeals.EXPECT().ExistsExact(gomock.Any(), s.src.ID, gomock.Any(), gomock.Any()).
		Return(false, nil).Times(4)
	s.mockDeals.EXPECT().FuzzyPriceTexts(gomock.Any(), s.src.ID, gomock.Any(), gomock.Any()).
		Return(nil, nil).Times(3)

	var rec repository.AcceptedDealRecord
	s.captureInsert(&rec)

	inserted, err := s.admission.AdmitBatch(context.Background(), lowConf, s.src)

	s.Require().NoError(err)
	s.Equal(1, inserted)
	s.Equal(deal.PlaceholderTitle, rec.Title)
	s.False(rec.IsValid)
	s.False(rec.NeedsReview)
}

func (s *AdmissionTestSuite) TestBatchPlaceholderNotDuplicatedSameDay() {
	lowConf := []deal.Candidate{
		{Category: "flower", Title: "blurry row", PriceText: "$10", Confidence: 0.2},
	}

	s.mockDeals.EXPECT().ExistsExact(gomock.Any(), s.src.ID, gomock.Any(), gomock.Any()).
		Return(false, nil)
	s.mockDeals.EXPECT().FuzzyPriceTexts(gomock.Any(), s.src.ID, gomock.Any(), gomock.Any()).
		Return(nil, nil)
	// Placeholder for this source/date already exists.
	s.mockDeals.EXPECT().ExistsExact(gomock.Any(), s.src.ID, gomock.Any(), gomock.Any()).
		Return(true, nil)

	inserted, err := s.admission.AdmitBatch(context.Background(), lowConf, s.src)

	s.Require().NoError(err)
	s.Equal(0, inserted)
}
