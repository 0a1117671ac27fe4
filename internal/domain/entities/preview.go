package entities

// PaintSurface is the surface class targeted by the AI repaint preview.

type PaintSurface string

const (
	SurfaceWalls      PaintSurface = "walls"
	SurfaceCeiling    PaintSurface = "ceiling"
	SurfaceFrames     PaintSurface = "frames"
	SurfaceDoors      PaintSurface = "doors"
	SurfaceBaseboards PaintSurface = "baseboards"
	SurfaceMolding    PaintSurface = "molding"
	SurfaceFacade     PaintSurface = "facade"
)

// IsValid checks if the surface is one of the defined constants.
func (s PaintSurface) IsValid() bool {
	switch s {
	case SurfaceWalls, SurfaceCeiling, SurfaceFrames, SurfaceDoors,
		SurfaceBaseboards, SurfaceMolding, SurfaceFacade:
		return true
	}
	return false
}

// PreviewRequest asks the image collaborator to repaint one surface class of
// a customer photo. Exactly one of PhotoURL / PhotoData must be supplied.
type PreviewRequest struct {
	PhotoURL  string       `json:"photo_url,omitempty"`
	PhotoData []byte       `json:"photo_data,omitempty"`
	MimeType  string       `json:"mime_type,omitempty"`
	Surface   PaintSurface `json:"surface"`
	Color     string       `json:"color"`
}

// PreviewResult is the generated preview image.
type PreviewResult struct {
	ImageData []byte `json:"image_data"`
	MimeType  string `json:"mime_type"`
}

// ContactMessage is a general contact-form submission forwarded to the
// form-submission collaborator. Honeypot is the hidden anti-spam field: when
// filled by a bot the submission is accepted but silently dropped.
type ContactMessage struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Subject  string `json:"subject,omitempty"`
	Body     string `json:"body"`
	Honeypot string `json:"-"`
}
