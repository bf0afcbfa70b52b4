package catalog

import (
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/model"
)

// View is the browsing state of one catalog page: the raw snapshot, the
// selected criteria and the page cursor.
//
// Changing books, filters or sort recomputes the page but keeps CurrentPage,
// so a shrinking result set can leave the cursor past TotalPages and the
// page empty.
type View struct {
	pipeline *Pipeline

	books       []model.Book
	filters     FilterCriteria
	sort        SortOption
	currentPage int

	items      []model.Book
	totalPages int
}

func NewView(p *Pipeline) *View {
	v := &View{
		pipeline:    p,
		filters:     DefaultFilters(),
		currentPage: 1,
	}
	v.recompute()
	return v
}

func (v *View) SetBooks(books []model.Book) {
	v.books = books
	v.recompute()
}

func (v *View) SetFilters(f FilterCriteria) {
	v.filters = f
	v.recompute()
}

func (v *View) SetSort(opt SortOption) {
	v.sort = opt
	v.recompute()
}

func (v *View) NextPage() {
	if v.currentPage < v.totalPages {
		v.currentPage++
	}
}

func (v *View) PrevPage() {
	if v.currentPage > 1 {
		v.currentPage--
	}
}

func (v *View) CurrentPage() int { return v.currentPage }

func (v *View) TotalPages() int { return v.totalPages }

func (v *View) Filters() FilterCriteria { return v.filters }

// Items is the page at CurrentPage.
func (v *View) Items() []model.Book {
	return Paginate(v.items, v.currentPage)
}

func (v *View) recompute() {
	filtered := Filter(v.books, v.filters)
	v.pipeline.Sort(filtered, v.sort)
	v.items = filtered
	v.totalPages = TotalPages(len(filtered))
}
