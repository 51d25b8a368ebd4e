package opinions

// Citation is the citing/cited edge between two opinions. Depth counts how
// many times the citing opinion references the cited one.
type Citation struct {
	ID              string `validate:"required,uuid4"`
	CitingOpinionID string `validate:"required,uuid4"`
	CitedOpinionID  string `validate:"required,uuid4"`
	Depth           int    `validate:"min=1"`
}

// Validate for validating Citation struct
func (c *Citation) Validate() error {
	return validateStruct(c)
}
