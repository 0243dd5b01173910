//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"leafdeals/internal/pkg/clock"
	"leafdeals/internal/pkg/config"
	"leafdeals/internal/pkg/geo"
	"leafdeals/internal/usecase/queries"
	queriesmock "leafdeals/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DealQueriesTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockStore    *queriesmock.MockDealReadStore
	mockGeocoder *queriesmock.MockPostalGeocoder
	clock        *clock.MockClock
	cfg          config.QualityConfig
	dealQueries  queries.DealQueries
}

func (s *DealQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = queriesmock.NewMockDealReadStore(s.mockCtrl)
	s.mockGeocoder = queriesmock.NewMockPostalGeocoder(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC))
	s.cfg = config.NewTestConfig().Quality
	s.dealQueries = queries.NewDealQueries(s.mockStore, s.mockGeocoder, s.cfg, s.clock)
}

func (s *DealQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDealQueriesSuite(t *testing.T) {
	suite.Run(t, new(DealQueriesTestSuite))
}

func view(title, category, price string) *queries.DealView {
	return &queries.DealView{
		ID:        uuid.New(),
		SourceID:  uuid.New(),
		Title:     title,
		Category:  category,
		PriceText: price,
	}
}

func (s *DealQueriesTestSuite) TestFreshnessWindowPassedToStore() {
	expectedSince := s.clock.Now().Add(-s.cfg.FreshnessWindow)

	s.mockStore.EXPECT().ListFresh(gomock.Any(), gomock.Any(), expectedSince).
		Return(nil, nil)

	deals, err := s.dealQueries.ListDeals(context.Background(), queries.DealFilters{})

	s.Require().NoError(err)
	s.Empty(deals)
}

func (s *DealQueriesTestSuite) TestOrderedByCategoryScoreThenPrice() {
	edible := view("THC Gummies 100mg", "edibles", "$15")
	cheapFlower := view("Shake Special", "flower", "$10")
	dearFlower := view("Top Shelf Eighth", "flower", "$45")

	s.mockStore.EXPECT().ListFresh(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*queries.DealView{edible, dearFlower, cheapFlower}, nil)

	deals, err := s.dealQueries.ListDeals(context.Background(), queries.DealFilters{})

	s.Require().NoError(err)
	s.Require().Len(deals, 3)
	// flower (100) before edibles (60); within flower, cheaper first
	s.Equal(cheapFlower.ID, deals[0].ID)
	s.Equal(dearFlower.ID, deals[1].ID)
	s.Equal(edible.ID, deals[2].ID)
}

func (s *DealQueriesTestSuite) TestPostalCodeRanksNearest() {
	postal := "48201"
	origin := &geo.Location{Point: geo.Point{Lat: 42.3466, Lng: -83.0620}}

	nearLat, nearLng := 42.35, -83.06
	farLat, farLng := 42.50, -83.20
	near := view("OG Kush Eighth", "flower", "$25")
	near.SourceLat, near.SourceLng = &nearLat, &nearLng
	far := view("OG Kush Eighth", "flower", "$25")
	far.SourceLat, far.SourceLng = &farLat, &farLng

	s.mockStore.EXPECT().ListFresh(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*queries.DealView{far, near}, nil)
	s.mockGeocoder.EXPECT().Resolve(gomock.Any(), postal).Return(origin, nil)

	deals, err := s.dealQueries.ListDeals(context.Background(), queries.DealFilters{PostalCode: &postal})

	s.Require().NoError(err)
	s.Require().Len(deals, 1)
	s.Equal(near.ID, deals[0].ID)
	s.NotNil(deals[0].DistanceMeters)
}

func (s *DealQueriesTestSuite) TestGeocodeFailureDegradesToUnranked() {
	postal := "48201"

	s.mockStore.EXPECT().ListFresh(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*queries.DealView{view("OG Kush Eighth", "flower", "$25")}, nil)
	s.mockGeocoder.EXPECT().Resolve(gomock.Any(), postal).
		Return(nil, context.DeadlineExceeded)

	deals, err := s.dealQueries.ListDeals(context.Background(), queries.DealFilters{PostalCode: &postal})

	s.Require().NoError(err)
	s.Require().Len(deals, 1)
	s.Nil(deals[0].DistanceMeters)
}

func (s *DealQueriesTestSuite) TestDisplayPriceDecorated() {
	priced := view("OG Kush Eighth", "flower", "2 for $50.50")
	unpriced := view("BOGO Prerolls", "prerolls", "buy one get one")

	s.mockStore.EXPECT().ListFresh(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*queries.DealView{priced, unpriced}, nil)

	deals, err := s.dealQueries.ListDeals(context.Background(), queries.DealFilters{})

	s.Require().NoError(err)
	s.Require().Len(deals, 2)

	byID := map[uuid.UUID]*queries.DealView{deals[0].ID: deals[0], deals[1].ID: deals[1]}
	s.Require().NotNil(byID[priced.ID].DisplayPrice)
	s.Equal("$2", *byID[priced.ID].DisplayPrice)
	s.Nil(byID[unpriced.ID].DisplayPrice)
}

func (s *DealQueriesTestSuite) TestStoreErrorMarked() {
	s.mockStore.EXPECT().ListFresh(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, context.DeadlineExceeded)

	_, err := s.dealQueries.ListDeals(context.Background(), queries.DealFilters{})
	s.Require().ErrorIs(err, queries.ErrDealListFailed)
}
