package store_test

import (
	"math/rand"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"ferromart/internal/domain"
	"ferromart/internal/store"
)

func memState(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := store.OpenState(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	return db
}

func product(id int, price float64) domain.Product {
	return domain.Product{ID: id, Name: "Hex Bolt M8", Price: price, Stock: 100, CategoryID: 1}
}

func TestAddMergesSameProduct(t *testing.T) {
	cart := store.NewCartStore(memState(t))

	p := product(7, 10.00)
	cart.Add(p, 2)
	cart.Add(p, 3)

	lines := cart.Lines()
	if len(lines) != 1 {
		t.Fatalf("want 1 line, got %d", len(lines))
	}
	if lines[0].Quantity != 5 {
		t.Fatalf("want quantity 5, got %d", lines[0].Quantity)
	}
}

func TestAddDefaultsQuantityToOne(t *testing.T) {
	cart := store.NewCartStore(memState(t))
	cart.Add(product(1, 5.00), 0)
	cart.Add(product(2, 5.00), -3)

	for _, l := range cart.Lines() {
		if l.Quantity != 1 {
			t.Fatalf("product %d: want quantity 1, got %d", l.Product.ID, l.Quantity)
		}
	}
}

func TestUpdateQuantityZeroRemoves(t *testing.T) {
	cart := store.NewCartStore(memState(t))
	cart.Add(product(7, 10.00), 2)

	cart.UpdateQuantity(7, 0)
	if len(cart.Lines()) != 0 {
		t.Fatal("zero quantity should remove the line")
	}

	cart.Add(product(7, 10.00), 2)
	cart.UpdateQuantity(7, -5)
	if len(cart.Lines()) != 0 {
		t.Fatal("negative quantity clamps to zero and removes the line")
	}
}

func TestUpdateQuantityUnknownIsNoop(t *testing.T) {
	cart := store.NewCartStore(memState(t))
	cart.Add(product(7, 10.00), 2)

	cart.UpdateQuantity(99, 4)
	lines := cart.Lines()
	if len(lines) != 1 || lines[0].Quantity != 2 {
		t.Fatalf("unexpected cart after unknown-id update: %+v", lines)
	}
}

func TestRemoveUnknownIsNoop(t *testing.T) {
	cart := store.NewCartStore(memState(t))
	cart.Add(product(7, 10.00), 1)
	cart.Remove(42)
	if len(cart.Lines()) != 1 {
		t.Fatal("removing an absent id must not change the cart")
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	db := memState(t)
	cart := store.NewCartStore(db)

	cart.Add(product(3, 2.50), 4)
	cart.Add(product(1, 99.99), 1)
	cart.Add(product(8, 15.00), 2)
	cart.UpdateQuantity(1, 6)

	reloaded := store.NewCartStore(db)
	a, b := cart.Lines(), reloaded.Lines()
	if len(a) != len(b) {
		t.Fatalf("line count mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Product.ID != b[i].Product.ID || a[i].Quantity != b[i].Quantity {
			t.Fatalf("line %d mismatch: %+v vs %+v", i, a[i], b[i])
		}
	}
	if reloaded.Subtotal() != cart.Subtotal() {
		t.Fatalf("subtotal mismatch after reload: %v vs %v", reloaded.Subtotal(), cart.Subtotal())
	}
}

func TestMalformedStateTreatedAsEmpty(t *testing.T) {
	db := memState(t)
	if _, err := db.Exec(`INSERT INTO state(key,value) VALUES('cart','{not json')`); err != nil {
		t.Fatal(err)
	}
	cart := store.NewCartStore(db)
	if len(cart.Lines()) != 0 {
		t.Fatal("malformed persisted cart must load as empty")
	}
}

// Derived totals must match a straightforward recomputation for any
// sequence of add/remove/update operations.
func TestDerivedTotalsUnderRandomOps(t *testing.T) {
	cart := store.NewCartStore(memState(t))
	rng := rand.New(rand.NewSource(1))

	prices := map[int]float64{}
	qty := map[int]int{}

	check := func() {
		t.Helper()
		wantCount := 0
		wantTotal := 0.0
		for id, q := range qty {
			wantCount += q
			wantTotal += prices[id] * float64(q)
		}
		if got := cart.ItemCount(); got != wantCount {
			t.Fatalf("item count: want %d, got %d", wantCount, got)
		}
		if got := cart.Subtotal(); got != wantTotal {
			t.Fatalf("subtotal: want %v, got %v", wantTotal, got)
		}
	}

	for i := 0; i < 500; i++ {
		id := rng.Intn(10) + 1
		if _, ok := prices[id]; !ok {
			prices[id] = float64(rng.Intn(2000)) / 4 // quarter-dollar prices stay exact in float64
		}
		switch rng.Intn(3) {
		case 0:
			n := rng.Intn(5) + 1
			cart.Add(product(id, prices[id]), n)
			qty[id] += n
		case 1:
			cart.Remove(id)
			delete(qty, id)
		case 2:
			n := rng.Intn(7) - 1
			cart.UpdateQuantity(id, n)
			if _, ok := qty[id]; ok {
				if n <= 0 {
					delete(qty, id)
				} else {
					qty[id] = n
				}
			}
		}
		check()
	}
}
