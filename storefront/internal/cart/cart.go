package cart

import (
	"sync"
	"time"

	"github.com/Astemirdum/bookstore-storefront/storefront/internal/model"
)

const (
	NotificationAdded = "success"
	addedTitle        = "Book added to the cart successfully!"
	dismissAfter      = 1500 * time.Millisecond
)

// Cart is an ordered set of line items, at most one per book id.
// Every operation is total and runs under the cart's lock.
type Cart struct {
	mu    sync.Mutex
	items []model.CartItem
}

func New() *Cart {
	return &Cart{items: make([]model.CartItem, 0)}
}

// AddToCart replaces the quantity of an existing line item, otherwise appends item.
func (c *Cart) AddToCart(item model.CartItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.indexOf(item.ID); i >= 0 {
		c.items[i].Quantity = item.Quantity
		return
	}
	c.items = append(c.items, item)
}

func (c *Cart) RemoveFromCart(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.indexOf(id); i >= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
}

func (c *Cart) ClearCart() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make([]model.CartItem, 0)
}

func (c *Cart) IncreaseQuantity(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.indexOf(id); i >= 0 {
		c.items[i].Quantity++
	}
}

// DecreaseQuantity never takes a line item below 1; use RemoveFromCart to drop it.
func (c *Cart) DecreaseQuantity(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.indexOf(id); i >= 0 && c.items[i].Quantity > 1 {
		c.items[i].Quantity--
	}
}

// AddOrIncrement is the "Add to Cart" action. The returned notification is
// for the caller to deliver; it does not affect cart state.
func (c *Cart) AddOrIncrement(book model.Book) model.Notification {
	c.mu.Lock()
	if i := c.indexOf(book.ID); i >= 0 {
		c.items[i].Quantity++
	} else {
		c.items = append(c.items, model.NewCartItem(book, 1))
	}
	c.mu.Unlock()

	return model.Notification{
		Kind:           NotificationAdded,
		Title:          addedTitle,
		BookID:         book.ID,
		DismissAfterMs: dismissAfter.Milliseconds(),
	}
}

// Items returns a copy in insertion order.
func (c *Cart) Items() []model.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Count is the total number of copies across line items.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) Subtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var sum float64
	for _, it := range c.items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}

func (c *Cart) View() model.CartView {
	items := c.Items()
	v := model.CartView{Items: items}
	for _, it := range items {
		v.Count += it.Quantity
		v.Subtotal += it.Price * float64(it.Quantity)
	}
	if len(items) == 0 {
		v.Message = "Your cart is empty."
	}
	return v
}

func (c *Cart) indexOf(id string) int {
	for i := range c.items {
		if c.items[i].ID == id {
			return i
		}
	}
	return -1
}
