package dto

// DuplicateRow identifies an import row whose name was already taken.
type DuplicateRow struct {
	Name       string `json:"name"`
	ExistingID int64  `json:"existing_id"`
}

// ImportSummary is the three-part result of a bulk import. The created
// products themselves are not returned.
type ImportSummary struct {
	Added      int            `json:"added"`
	Skipped    int            `json:"skipped"`
	Duplicates []DuplicateRow `json:"duplicates"`
}
