package order

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/arrows94/3d-order-manager/internal/pkg/errs"
)

// Field length limits for persisted submission content.
const (
	maxLinkLength        = 2000
	maxImageRefLength    = 2000
	maxDescriptionLength = 4000
)

// Submission is what the customer hands in with a new order: a link to a
// printable model and/or a reference to an uploaded image, plus a free-form
// description. At least one of link and image reference must be present;
// this is enforced at construction time only and never re-checked later.
//
// The image reference is an opaque identifier issued by the upload
// collaborator; the domain never inspects file content.
type Submission struct {
	link        string
	imageRef    string
	description string
}

// NewSubmission validates and creates a Submission.
// Returns a ValueIsRequiredError when neither link nor image is given.
func NewSubmission(link, imageRef, description string) (Submission, error) {
	link = strings.TrimSpace(link)
	imageRef = strings.TrimSpace(imageRef)
	description = strings.TrimSpace(description)

	if link == "" && imageRef == "" {
		return Submission{}, errs.NewValueIsRequiredErrorWithCause("submission",
			fmt.Errorf("either a model link or an image is required"))
	}

	if link != "" {
		if len(link) > maxLinkLength {
			return Submission{}, errs.NewValueIsInvalidErrorWithCause("link",
				fmt.Errorf("exceeds %d characters", maxLinkLength))
		}
		parsed, err := url.Parse(link)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return Submission{}, errs.NewValueIsInvalidErrorWithCause("link",
				fmt.Errorf("%q is not an absolute URL", link))
		}
	}

	if len(imageRef) > maxImageRefLength {
		return Submission{}, errs.NewValueIsInvalidErrorWithCause("image reference",
			fmt.Errorf("exceeds %d characters", maxImageRefLength))
	}
	if len(description) > maxDescriptionLength {
		return Submission{}, errs.NewValueIsInvalidErrorWithCause("description",
			fmt.Errorf("exceeds %d characters", maxDescriptionLength))
	}

	return Submission{link: link, imageRef: imageRef, description: description}, nil
}

// Link returns the model link, empty when only an image was submitted.
func (s Submission) Link() string {
	return s.link
}

// ImageRef returns the upload reference, empty when only a link was submitted.
func (s Submission) ImageRef() string {
	return s.imageRef
}

// Description returns the customer's free-form description.
func (s Submission) Description() string {
	return s.description
}

// Validate ensures the submission still carries at least one content source.
func (s Submission) Validate() error {
	if s.link == "" && s.imageRef == "" {
		return errs.NewValueIsRequiredError("submission")
	}
	return nil
}

// Customer holds the contact details of the person who submitted an order.
// Both fields are required; the email is only used for display to the
// operator, actual notification delivery is out of scope.
type Customer struct {
	name  string
	email string
}

// NewCustomer validates and creates the customer contact value object.
func NewCustomer(name, email string) (Customer, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer name")
	}
	if email == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer email")
	}
	if !strings.Contains(email, "@") {
		return Customer{}, errs.NewValueIsInvalidErrorWithCause("customer email",
			fmt.Errorf("%q is not an email address", email))
	}

	return Customer{name: name, email: email}, nil
}

// Name returns the customer's display name.
func (c Customer) Name() string {
	return c.name
}

// Email returns the customer's email address.
func (c Customer) Email() string {
	return c.email
}

// Validate ensures the customer contact was properly constructed.
func (c Customer) Validate() error {
	if c.name == "" || c.email == "" {
		return errs.NewValueIsRequiredError("customer")
	}
	return nil
}
