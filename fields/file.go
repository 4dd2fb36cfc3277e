package fields

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// File is a column value type describing an uploaded file. It is stored as
// a JSON document; the bytes themselves live in whatever object storage the
// application uses.
type File struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	Path        string `json:"path"`
}

// GormDataType reports the column data type to the ORM.
func (File) GormDataType() string { return "json" }

// Value implements driver.Valuer.
func (f File) Value() (driver.Value, error) { return json.Marshal(f) }

// Scan implements sql.Scanner.
func (f *File) Scan(src any) error { return scanJSON(src, f) }

// Files is a multi-upload file column.
type Files []File

// GormDataType reports the column data type to the ORM.
func (Files) GormDataType() string { return "json" }

// Value implements driver.Valuer.
func (f Files) Value() (driver.Value, error) { return json.Marshal(f) }

// Scan implements sql.Scanner.
func (f *Files) Scan(src any) error { return scanJSON(src, f) }

// Image is a File whose content is known to be an image; the admin UI
// renders a thumbnail instead of a download link.
type Image struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	Path        string `json:"path"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
}

// GormDataType reports the column data type to the ORM.
func (Image) GormDataType() string { return "json" }

// Value implements driver.Valuer.
func (i Image) Value() (driver.Value, error) { return json.Marshal(i) }

// Scan implements sql.Scanner.
func (i *Image) Scan(src any) error { return scanJSON(src, i) }

// Images is a multi-upload image column.
type Images []Image

// GormDataType reports the column data type to the ORM.
func (Images) GormDataType() string { return "json" }

// Value implements driver.Valuer.
func (i Images) Value() (driver.Value, error) { return json.Marshal(i) }

// Scan implements sql.Scanner.
func (i *Images) Scan(src any) error { return scanJSON(src, i) }

func scanJSON(src, dest any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported scan source %T", src)
	}
}

// FileField renders as a file upload input.
type FileField struct {
	BaseField
	// Multiple is set when the column holds a list of files.
	Multiple bool `json:"multiple"`
}

// NewFileField creates a file field bound to name.
func NewFileField(name string) *FileField {
	f := &FileField{BaseField: newBase(name)}
	f.Searchable = false
	f.Orderable = false
	return f
}

// TypeName implements Field.
func (f *FileField) TypeName() string { return "file" }

// ImageField renders as an image upload input with preview.
type ImageField struct {
	BaseField
	// Multiple is set when the column holds a list of images.
	Multiple bool `json:"multiple"`
}

// NewImageField creates an image field bound to name.
func NewImageField(name string) *ImageField {
	f := &ImageField{BaseField: newBase(name)}
	f.Searchable = false
	f.Orderable = false
	return f
}

// TypeName implements Field.
func (f *ImageField) TypeName() string { return "image" }
