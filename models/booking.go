package models

// ContactMethod is how the client prefers to be reached.
type ContactMethod string

const (
	ContactByEmail ContactMethod = "email"
	ContactByText  ContactMethod = "text"
)

// ColorDirection is the requested color treatment for a piece.
type ColorDirection string

const (
	ColorBlackwork ColorDirection = "blackwork"
	ColorFull      ColorDirection = "fullcolor"
	ColorUnsure    ColorDirection = "unsure"
)

// BookingForm holds the full booking request as it is built up across the
// wizard steps. Owned exclusively by one intake session.
type BookingForm struct {
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	ContactMethod ContactMethod `json:"contactMethod"`

	Idea           string         `json:"idea"`
	StyleTags      []string       `json:"styleTags"`
	Placement      string         `json:"placement"`
	SizeInches     int            `json:"sizeInches"` // approximate, inches
	ColorDirection ColorDirection `json:"colorDirection"`

	References  string       `json:"references"` // links, one per line by convention
	StagedFiles []StagedFile `json:"stagedFiles"`

	BudgetMin int `json:"budgetMin"`
	BudgetMax int `json:"budgetMax"`

	Availability string `json:"availability"`
	Notes        string `json:"notes"`

	Agree bool `json:"agree"`
}

// StagedFile is a reference file selected for upload but not yet uploaded.
// The file bytes are held on local disk at TempPath until submission.
type StagedFile struct {
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	TempPath string `json:"tempPath"`
}

// UploadedFile is produced only after a successful upload call. The Key is
// the storage service's opaque handle, used for rollback deletion.
type UploadedFile struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Size int64  `json:"size"`
	URL  string `json:"url"`
}
