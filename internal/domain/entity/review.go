package entity

// Review is a user's rating of a place. The place and author are fixed at
// creation.
type Review struct {
	Base
	Text    string `attr:"text" validate:"notblank"`
	Rating  int    `attr:"rating" validate:"gte=1,lte=5"`
	PlaceID string `attr:"place_id" validate:"required"`
	UserID  string `attr:"user_id" validate:"required"`
}

// ReviewParams carries the fields of a new review.
type ReviewParams struct {
	Text    string
	Rating  int
	PlaceID string
	UserID  string
}

// NewReview validates params and returns a review with a fresh identity.
func NewReview(params ReviewParams) (*Review, error) {
	review := &Review{
		Base:    newBase(),
		Text:    params.Text,
		Rating:  params.Rating,
		PlaceID: params.PlaceID,
		UserID:  params.UserID,
	}

	if err := check(review); err != nil {
		return nil, err
	}

	return review, nil
}

// Attribute returns the value of the field tagged with name.
func (r *Review) Attribute(name string) (any, bool) {
	return attribute(r, name)
}

// Clone returns a copy of the review.
func (r *Review) Clone() *Review {
	clone := *r

	return &clone
}

// ReviewPatch is a partial update of a review's text and rating.
type ReviewPatch struct {
	Text   *string
	Rating *int
}

// Apply validates the present fields and applies them all, or none.
func (p ReviewPatch) Apply(r *Review) error {
	next := *r
	if p.Text != nil {
		next.Text = *p.Text
	}
	if p.Rating != nil {
		next.Rating = *p.Rating
	}

	if err := check(&next); err != nil {
		return err
	}

	next.touch()
	*r = next

	return nil
}
