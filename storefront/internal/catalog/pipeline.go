package catalog

import (
	"sort"

	"github.com/Astemirdum/bookstore-storefront/storefront/internal/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	PageSize = 30

	MinPrice = 0
	MaxPrice = 1000

	RelatedLimit = 6
)

type SortOption string

const (
	SortNone      SortOption = ""
	SortPriceAsc  SortOption = "priceAsc"
	SortPriceDesc SortOption = "priceDesc"
	SortNameAsc   SortOption = "nameAsc"
	SortNameDesc  SortOption = "nameDesc"
	SortDateAsc   SortOption = "dateAsc"
	SortDateDesc  SortOption = "dateDesc"
)

func (s SortOption) Valid() bool {
	switch s {
	case SortNone, SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc, SortDateAsc, SortDateDesc:
		return true
	}
	return false
}

// FilterCriteria zero value is not "no filter": PriceRange [0,0] keeps only free books.
// Use DefaultFilters for an unrestricted view.
type FilterCriteria struct {
	PriceRange [2]float64
	Category   model.Category
	Trending   bool
	Discount   bool
}

func DefaultFilters() FilterCriteria {
	return FilterCriteria{PriceRange: [2]float64{MinPrice, MaxPrice}}
}

func (f FilterCriteria) Match(b model.Book) bool {
	if b.NewPrice < f.PriceRange[0] || b.NewPrice > f.PriceRange[1] {
		return false
	}
	if f.Category != "" && b.Category != f.Category {
		return false
	}
	if f.Trending && !b.Trending {
		return false
	}
	if f.Discount && !b.Discounted() {
		return false
	}
	return true
}

// Pipeline derives the displayed page from a catalog snapshot.
type Pipeline struct {
	lang language.Tag
}

func NewPipeline(locale string) *Pipeline {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	return &Pipeline{lang: tag}
}

// Apply runs filter, sort and paginate from scratch. It never fails; an
// empty or out-of-range input yields an empty page.
func (p *Pipeline) Apply(books []model.Book, filters FilterCriteria, opt SortOption, page int) ([]model.Book, int) {
	filtered := Filter(books, filters)
	p.Sort(filtered, opt)
	return Paginate(filtered, page), TotalPages(len(filtered))
}

// Filter returns a new slice; books is left untouched.
func Filter(books []model.Book, filters FilterCriteria) []model.Book {
	out := make([]model.Book, 0, len(books))
	for _, b := range books {
		if filters.Match(b) {
			out = append(out, b)
		}
	}
	return out
}

// Sort orders books in place with a stable sort.
func (p *Pipeline) Sort(books []model.Book, opt SortOption) {
	var less func(a, b model.Book) bool
	switch opt {
	case SortPriceAsc:
		less = func(a, b model.Book) bool { return a.NewPrice < b.NewPrice }
	case SortPriceDesc:
		less = func(a, b model.Book) bool { return a.NewPrice > b.NewPrice }
	case SortNameAsc, SortNameDesc:
		// collate.Collator keeps internal buffers and is not safe for concurrent use.
		coll := collate.New(p.lang)
		sign := 1
		if opt == SortNameDesc {
			sign = -1
		}
		less = func(a, b model.Book) bool { return sign*coll.CompareString(a.Title, b.Title) < 0 }
	case SortDateAsc:
		less = func(a, b model.Book) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case SortDateDesc:
		less = func(a, b model.Book) bool { return a.CreatedAt.After(b.CreatedAt) }
	default:
		return
	}
	sort.SliceStable(books, func(i, j int) bool { return less(books[i], books[j]) })
}

func TotalPages(n int) int {
	if n <= 0 {
		return 1
	}
	return (n + PageSize - 1) / PageSize
}

// Paginate slices out the 1-indexed page. Pages past the end are empty rather than clamped.
func Paginate(books []model.Book, page int) []model.Book {
	if page < 1 || page > TotalPages(len(books)) {
		return []model.Book{}
	}
	start := (page - 1) * PageSize
	if start >= len(books) {
		return []model.Book{}
	}
	end := start + PageSize
	if end > len(books) {
		end = len(books)
	}
	return books[start:end]
}

// Related picks up to limit books sharing the category of book, in catalog order.
func Related(books []model.Book, book model.Book, limit int) []model.Book {
	out := make([]model.Book, 0, limit)
	for _, b := range books {
		if len(out) == limit {
			break
		}
		if b.Category == book.Category && b.ID != book.ID {
			out = append(out, b)
		}
	}
	return out
}
