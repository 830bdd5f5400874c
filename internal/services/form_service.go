package services

import (
	"travelconsole/internal/domain"
	"travelconsole/internal/forms"
	"travelconsole/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// Submission is the outcome of a simulated form submission.
type Submission struct {
	Form    string     `json:"form"`
	Mode    string     `json:"mode"`
	ID      string     `json:"id,omitempty"`
	Values  forms.Form `json:"values"`
	Message string     `json:"message"`
	// PasswordHashed is set when a user form carried a new password.
	PasswordHashed bool `json:"passwordHashed,omitempty"`
	// PasswordHash is the bcrypt hash of that password. It never leaves the process.
	PasswordHash []byte `json:"-"`
}

// CheckPassword reports whether plain matches the hashed password of a user submission.
func (s Submission) CheckPassword(plain string) error {
	if len(s.PasswordHash) == 0 {
		return domain.ValidationError{Field: "password", Msg: "no password was submitted"}
	}
	return bcrypt.CompareHashAndPassword(s.PasswordHash, []byte(plain))
}

// FormService validates entity forms. Nothing is stored.
type FormService struct {
	RequestID string
	// HashCost defaults to bcrypt.DefaultCost.
	HashCost int
}

// Submit validates f. An empty id creates, anything else updates.
func (s FormService) Submit(name, id string, f forms.Form) (Submission, error) {
	if err := forms.Validate(f); err != nil {
		utils.LogFields(s.RequestID, "forms", "reject", "form", name, "err", err)
		return Submission{}, err
	}

	edit := id != ""
	sub := Submission{
		Form:    name,
		Mode:    "create",
		ID:      id,
		Values:  f,
		Message: f.Success(edit),
	}
	if edit {
		sub.Mode = "update"
	}

	if u, ok := f.(*forms.UserForm); ok && u.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), s.cost())
		if err != nil {
			return Submission{}, domain.InternalError{Msg: "failed to hash password", Err: err}
		}
		u.Password = ""
		sub.PasswordHash = hash
		sub.PasswordHashed = true
	}

	utils.LogFields(s.RequestID, "forms", sub.Mode, "form", name, "id", id)
	return sub, nil
}

func (s FormService) cost() int {
	if s.HashCost > 0 {
		return s.HashCost
	}
	return bcrypt.DefaultCost
}
