package directory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-ldap/ldap/v3"

	"github.com/oba-ldap/aci/internal/aci"
	"github.com/oba-ldap/aci/internal/logging"
)

// AttributeACI is the attribute holding access control instructions.
const AttributeACI = "aci"

// Directory errors.
var (
	ErrInvalidDN = errors.New("directory: invalid DN")
	ErrEmptyACI  = errors.New("directory: ACI value is empty")
	ErrNoChanges = errors.New("directory: modify request has no changes")
)

// Searcher runs LDAP searches. *ldap.Conn satisfies it.
type Searcher interface {
	Search(req *ldap.SearchRequest) (*ldap.SearchResult, error)
}

// Modifier runs LDAP modify operations. *ldap.Conn satisfies it.
type Modifier interface {
	Modify(req *ldap.ModifyRequest) error
}

// EntryACI is one aci value of a directory entry.
type EntryACI struct {
	DN   string `json:"dn" yaml:"dn"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	ACI  string `json:"aci" yaml:"aci"`
}

// Accessor reads and modifies ACIs through an LDAP connection.
type Accessor struct {
	searcher Searcher
	modifier Modifier
	logger   logging.Logger
}

// NewAccessor creates an accessor. Either side may be nil when the caller
// only reads or only writes.
func NewAccessor(searcher Searcher, modifier Modifier, logger logging.Logger) *Accessor {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Accessor{
		searcher: searcher,
		modifier: modifier,
		logger:   logger,
	}
}

// RetrieveACIs returns every aci value in the subtree rooted at baseDN,
// in the order the server returned them.
func (a *Accessor) RetrieveACIs(ctx context.Context, baseDN string) ([]EntryACI, error) {
	if a.searcher == nil {
		return nil, errors.New("directory: accessor has no searcher")
	}
	if _, err := ldap.ParseDN(baseDN); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidDN, baseDN, err)
	}
	req := ldap.NewSearchRequest(
		baseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		0, 0, false,
		"("+AttributeACI+"=*)",
		[]string{AttributeACI},
		nil,
	)

	var result *ldap.SearchResult
	err := await(ctx, func() (err error) {
		result, err = a.searcher.Search(req)
		return err
	})
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("directory: search %s: %w", baseDN, err)
	}

	var out []EntryACI
	for _, entry := range result.Entries {
		for _, value := range entry.GetEqualFoldAttributeValues(AttributeACI) {
			name, _ := aci.ActualName(value)
			out = append(out, EntryACI{DN: entry.DN, Name: name, ACI: value})
		}
	}

	a.logger.Debug("retrieved ACIs", "base", baseDN, "entries", len(result.Entries), "acis", len(out))
	return out, nil
}

// Apply sends a modify request.
func (a *Accessor) Apply(ctx context.Context, req *ldap.ModifyRequest) error {
	if a.modifier == nil {
		return errors.New("directory: accessor has no modifier")
	}
	if req == nil || len(req.Changes) == 0 {
		return ErrNoChanges
	}
	err := await(ctx, func() error { return a.modifier.Modify(req) })
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if err != nil {
		return fmt.Errorf("directory: modify %s: %w", req.DN, err)
	}

	a.logger.Info("ACI change applied", "dn", req.DN, "changes", len(req.Changes))
	return nil
}

// await runs op and waits for it or for ctx, whichever ends first. The
// LDAP client calls block without a context, so on cancellation op is left
// to finish on its own and its result is dropped.
func await(ctx context.Context, op func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() { done <- op() }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// AddRequest builds a request adding aciText to the entry at dn.
func AddRequest(dn, aciText string) (*ldap.ModifyRequest, error) {
	req, err := newRequest(dn, aciText)
	if err != nil {
		return nil, err
	}
	req.Add(AttributeACI, []string{aciText})
	return req, nil
}

// DeleteRequest builds a request removing the exact value aciText from the
// entry at dn.
func DeleteRequest(dn, aciText string) (*ldap.ModifyRequest, error) {
	req, err := newRequest(dn, aciText)
	if err != nil {
		return nil, err
	}
	req.Delete(AttributeACI, []string{aciText})
	return req, nil
}

// ReplaceRequest builds a request that deletes oldACI and adds newACI.
func ReplaceRequest(dn, oldACI, newACI string) (*ldap.ModifyRequest, error) {
	if strings.TrimSpace(oldACI) == "" {
		return nil, ErrEmptyACI
	}
	req, err := newRequest(dn, newACI)
	if err != nil {
		return nil, err
	}
	req.Delete(AttributeACI, []string{oldACI})
	req.Add(AttributeACI, []string{newACI})
	return req, nil
}

func newRequest(dn, aciText string) (*ldap.ModifyRequest, error) {
	if strings.TrimSpace(dn) == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidDN)
	}
	if _, err := ldap.ParseDN(dn); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidDN, dn, err)
	}
	if strings.TrimSpace(aciText) == "" {
		return nil, ErrEmptyACI
	}
	return ldap.NewModifyRequest(dn, nil), nil
}
