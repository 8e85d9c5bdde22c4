package aci

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-ldap/ldap/v3"
	"github.com/go-playground/validator/v10"

	"github.com/oba-ldap/aci/internal/filter"
)

// Validation errors.
var (
	ErrNoRightsSelected = errors.New("aci: no right selected")
	ErrUnknownAttribute = errors.New("aci: unknown target attribute")
	ErrInvalidBindDN    = errors.New("aci: invalid bind rule DN")
	ErrInvalidFilter    = errors.New("aci: invalid target filter")
)

// AttributeCatalog reports whether an attribute type is known.
type AttributeCatalog interface {
	Has(name string) bool
}

var (
	draftValidator = newDraftValidator()
	hhmmPattern    = regexp.MustCompile(`^([01][0-9]|2[0-3])[0-5][0-9]$`)
)

func newDraftValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return hhmmPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("aciop", func(fl validator.FieldLevel) bool {
		return IsOperator(fl.Field().String())
	})
	_ = v.RegisterValidation("attrop", func(fl validator.FieldLevel) bool {
		op := fl.Field().String()
		return op == OpEqual || op == OpNotEqual
	})
	_ = v.RegisterValidation("bindtype", func(fl validator.FieldLevel) bool {
		return IsBindType(fl.Field().String())
	})
	_ = v.RegisterValidation("aciright", func(fl validator.FieldLevel) bool {
		_, err := ParseRight(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("ldapdn", func(fl validator.FieldLevel) bool {
		return validDN(strings.TrimPrefix(fl.Field().String(), ldapURLPrefix))
	})

	return v
}

// ValidateDraft checks a draft before it is submitted.
// Returns a slice of errors found during validation. When catalog is not
// nil every target attribute must be known to it.
//
// Validation is advisory: Assemble only refuses a draft without a target.
func ValidateDraft(d *Draft, catalog AttributeCatalog) []error {
	if d == nil {
		return []error{ErrNilDraft}
	}

	var errs []error

	if err := draftValidator.Struct(d); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return []error{err}
		}
		for _, fe := range verrs {
			errs = append(errs, fmt.Errorf("%s: failed %q validation (value %q)", fe.Namespace(), fe.Tag(), fmt.Sprint(fe.Value())))
		}
	}

	if len(d.SelectedRights()) == 0 {
		errs = append(errs, ErrNoRightsSelected)
	}

	if catalog != nil {
		for _, attr := range uniqueAttrs(d.TargetAttrs) {
			if !catalog.Has(attr) {
				errs = append(errs, fmt.Errorf("%w: %s", ErrUnknownAttribute, attr))
			}
		}
	}

	if strings.TrimSpace(d.TargetFilter) != "" {
		f, err := filter.Parse(d.TargetFilter)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidFilter, err))
		case catalog != nil:
			for _, attr := range f.Attributes() {
				if !catalog.Has(attr) {
					errs = append(errs, fmt.Errorf("%w: %s in targetFilter", ErrUnknownAttribute, attr))
				}
			}
		}
	}

	for i, r := range d.BindRules {
		switch r.Type {
		case BindUserDN, BindGroupDN, BindRoleDN:
			if err := validateBindDN(r.Value); err != nil {
				errs = append(errs, fmt.Errorf("bindRules[%d]: %w", i, err))
			}
		}
	}

	return errs
}

// validateBindDN checks every ldap:/// URL of a DN bind rule value. The
// special subjects anyone, all, self and parent are accepted, and only the
// DN part of an URL with search parameters is checked.
func validateBindDN(value string) error {
	for _, url := range strings.Split(value, "||") {
		url = strings.TrimSpace(url)
		if !strings.HasPrefix(url, ldapURLPrefix) {
			return fmt.Errorf("%w: %q lacks %s", ErrInvalidBindDN, url, ldapURLPrefix)
		}
		dn := strings.TrimPrefix(url, ldapURLPrefix)
		if idx := strings.IndexByte(dn, '?'); idx >= 0 {
			dn = dn[:idx]
		}
		switch strings.ToLower(dn) {
		case "anyone", "all", "self", "parent":
			continue
		}
		if !validDN(dn) {
			return fmt.Errorf("%w: %q", ErrInvalidBindDN, dn)
		}
	}
	return nil
}

func validDN(dn string) bool {
	if strings.TrimSpace(dn) == "" {
		return false
	}
	_, err := ldap.ParseDN(dn)
	return err == nil
}
