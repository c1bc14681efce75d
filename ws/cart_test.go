package ws

import (
	"math"
	"testing"

	"github.com/kim-el/basic-pos/entity"
)

func product(id uint, name string, price float64) entity.Product {
	p := entity.Product{Name: name, Price: price, IsActive: true}
	p.ID = id
	return p
}

func TestCartAddMergesSameProduct(t *testing.T) {
	cart := NewCart()
	coffee := product(1, "Coffee", 4.50)

	cart.Add(coffee, 1)
	cart.Add(coffee, 2)

	items := cart.Items()
	if len(items) != 1 {
		t.Fatalf("got %d lines, want 1", len(items))
	}
	if items[0].Quantity != 3 {
		t.Errorf("quantity = %d, want 3", items[0].Quantity)
	}
}

func TestCartSetQuantityZeroRemovesLine(t *testing.T) {
	cart := NewCart()
	cart.Add(product(1, "Coffee", 4.50), 2)
	cart.Add(product(2, "Bagel", 2.75), 1)

	cart.SetQuantity(1, 0)

	items := cart.Items()
	if len(items) != 1 || items[0].Product.Name != "Bagel" {
		t.Fatalf("got %+v, want only the Bagel line", items)
	}

	cart.SetQuantity(2, -3) // negative counts as absent too
	if items := cart.Items(); len(items) != 0 {
		t.Errorf("got %d lines, want 0", len(items))
	}
}

func TestCartAddNonPositiveQuantityIgnored(t *testing.T) {
	cart := NewCart()
	cart.Add(product(1, "Coffee", 4.50), 0)
	cart.Add(product(1, "Coffee", 4.50), -1)
	if items := cart.Items(); len(items) != 0 {
		t.Errorf("got %d lines, want 0", len(items))
	}
}

func TestCartClear(t *testing.T) {
	cart := NewCart()
	cart.Add(product(1, "Coffee", 4.50), 2)
	cart.Clear()

	items := cart.Items()
	if len(items) != 0 {
		t.Errorf("got %d lines, want 0", len(items))
	}
	if items == nil {
		t.Error("cleared cart is nil, want empty snapshot")
	}
}

func TestCartTotals(t *testing.T) {
	cart := NewCart()
	cart.Add(product(1, "Burger", 18.99), 1)
	cart.Add(product(2, "Latte", 5.25), 2)

	subtotal, tax, total := cart.Totals()
	wantSub := 18.99 + 2*5.25
	if math.Abs(subtotal-wantSub) > 1e-9 {
		t.Errorf("subtotal = %v, want %v", subtotal, wantSub)
	}
	if math.Abs(tax-wantSub*DefaultTaxRate) > 1e-9 {
		t.Errorf("tax = %v, want %v", tax, wantSub*DefaultTaxRate)
	}
	if math.Abs(total-(subtotal+tax)) > 1e-9 {
		t.Errorf("total = %v, want %v", total, subtotal+tax)
	}
}

func TestCartItemsIsACopy(t *testing.T) {
	cart := NewCart()
	cart.Add(product(1, "Coffee", 4.50), 1)

	items := cart.Items()
	items[0].Quantity = 99

	if got := cart.Items()[0].Quantity; got != 1 {
		t.Errorf("mutating the snapshot changed the cart: quantity = %d", got)
	}
}
