package store_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"

	"darkher/internal/domain"
	"darkher/internal/storage"
	"darkher/internal/store"
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func fakeProduct() domain.Product {
	return domain.Product{
		ID:          gofakeit.LetterN(7),
		Name:        gofakeit.ProductName(),
		Description: gofakeit.Sentence(8),
		Price:       decimal.NewFromFloat(gofakeit.Price(1, 100)),
		Image:       gofakeit.URL(),
		Category:    gofakeit.Word(),
		Stock:       int64(gofakeit.Number(1, 50)),
	}
}

type cartSuite struct {
	suite.Suite

	backend *storage.FileStore
	cart    *store.Cart
}

// entry point to run the tests in the suite
func TestCartSuite(t *testing.T) {
	defer goleak.VerifyNone(t)

	suite.Run(t, new(cartSuite))
}

// fresh backend and cart before each test
func (s *cartSuite) SetupTest() {
	var err error
	s.backend, err = storage.NewFileStore(s.T().TempDir(), zerolog.Nop())
	s.Require().NoError(err)
	s.cart = store.NewCart(s.backend)
}

func (s *cartSuite) TestAddAccumulatesQuantity() {
	p := fakeProduct()

	merged, err := s.cart.Add(p, 1)
	s.Require().NoError(err)
	s.False(merged)

	merged, err = s.cart.Add(p, 2)
	s.Require().NoError(err)
	s.True(merged)

	merged, err = s.cart.Add(p, 3)
	s.Require().NoError(err)
	s.True(merged)

	s.Len(s.cart.Items(), 1)
	s.EqualValues(6, s.cart.TotalItems())
}

func (s *cartSuite) TestAddRejectsNonPositiveQuantity() {
	_, err := s.cart.Add(fakeProduct(), 0)
	s.Require().ErrorIs(err, store.ErrInvalidQuantity)

	_, err = s.cart.Add(fakeProduct(), -2)
	s.Require().ErrorIs(err, store.ErrInvalidQuantity)

	s.Empty(s.cart.Items())
}

func (s *cartSuite) TestSubtotalRecomputedFresh() {
	p1 := fakeProduct()
	p2 := fakeProduct()

	_, err := s.cart.Add(p1, 2)
	s.Require().NoError(err)
	_, err = s.cart.Add(p2, 1)
	s.Require().NoError(err)

	want := p1.Price.Mul(decimal.NewFromInt(2)).Add(p2.Price)
	s.True(want.Equal(s.cart.Subtotal()), "want %s got %s", want, s.cart.Subtotal())

	// subtotal follows the collection, no cached staleness
	s.Require().NoError(s.cart.UpdateQuantity(p1.ID, 5))
	want = p1.Price.Mul(decimal.NewFromInt(5)).Add(p2.Price)
	s.True(want.Equal(s.cart.Subtotal()))
}

func (s *cartSuite) TestUpdateQuantitySetsVerbatim() {
	p := fakeProduct()
	_, err := s.cart.Add(p, 1)
	s.Require().NoError(err)

	s.Require().NoError(s.cart.UpdateQuantity(p.ID, 7))
	s.EqualValues(7, s.cart.Items()[0].Quantity)
}

func (s *cartSuite) TestUpdateQuantityErrors() {
	p := fakeProduct()
	_, err := s.cart.Add(p, 1)
	s.Require().NoError(err)

	s.Require().ErrorIs(s.cart.UpdateQuantity(p.ID, 0), store.ErrInvalidQuantity)
	s.Require().ErrorIs(s.cart.UpdateQuantity("missing", 2), store.ErrNotFound)
}

func (s *cartSuite) TestRemoveIsIdempotent() {
	p := fakeProduct()
	_, err := s.cart.Add(p, 3)
	s.Require().NoError(err)

	s.Require().NoError(s.cart.Remove(p.ID))
	s.Empty(s.cart.Items())

	// second call is a no-op, not an error
	s.Require().NoError(s.cart.Remove(p.ID))
}

func (s *cartSuite) TestClear() {
	_, err := s.cart.Add(fakeProduct(), 2)
	s.Require().NoError(err)
	_, err = s.cart.Add(fakeProduct(), 4)
	s.Require().NoError(err)

	s.Require().NoError(s.cart.Clear())
	s.EqualValues(0, s.cart.TotalItems())
	s.True(s.cart.Subtotal().IsZero())
}

func (s *cartSuite) TestInsertionOrderPreserved() {
	p1, p2, p3 := fakeProduct(), fakeProduct(), fakeProduct()
	for _, p := range []domain.Product{p1, p2, p3} {
		_, err := s.cart.Add(p, 1)
		s.Require().NoError(err)
	}

	items := s.cart.Items()
	s.Require().Len(items, 3)
	s.Equal(p1.ID, items[0].Product.ID)
	s.Equal(p2.ID, items[1].Product.ID)
	s.Equal(p3.ID, items[2].Product.ID)
}

func (s *cartSuite) TestRehydrateFromBackend() {
	p1, p2 := fakeProduct(), fakeProduct()
	_, err := s.cart.Add(p1, 2)
	s.Require().NoError(err)
	_, err = s.cart.Add(p2, 1)
	s.Require().NoError(err)

	reloaded := store.NewCart(s.backend)
	s.Empty(cmp.Diff(s.cart.Items(), reloaded.Items(), decimalComparer))
}
