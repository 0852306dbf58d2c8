package trivia

// QuestionsPerPage is the page size used when none is configured.
const QuestionsPerPage = 10

// ClampPage maps any page number below 1 to 1.
func ClampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// Paginate returns the window of items for the 1-based page. A window past
// the end of items is empty, never nil.
func Paginate[T any](items []T, page, pageSize int) []T {
	if pageSize <= 0 {
		pageSize = QuestionsPerPage
	}
	page = ClampPage(page)

	pages := (len(items) + pageSize - 1) / pageSize
	if page > pages {
		return []T{}
	}

	offset := (page - 1) * pageSize
	end := min(offset+pageSize, len(items))
	return items[offset:end]
}
