package directory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-ldap/ldap/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	peopleACI = `(target="ldap:///ou=people,dc=example,dc=com")(targetattr="*")(version 3.0; acl "people"; allow(read) userdn="ldap:///anyone";)`
	selfACI   = `(targetattr="userPassword")(version 3.0; acl "self"; allow(write) userdn="ldap:///self";)`
)

type fakeConn struct {
	entries  []*ldap.Entry
	err      error
	searched *ldap.SearchRequest
	modified []*ldap.ModifyRequest
}

func (f *fakeConn) Search(req *ldap.SearchRequest) (*ldap.SearchResult, error) {
	f.searched = req
	if f.err != nil {
		return nil, f.err
	}
	return &ldap.SearchResult{Entries: f.entries}, nil
}

func (f *fakeConn) Modify(req *ldap.ModifyRequest) error {
	if f.err != nil {
		return f.err
	}
	f.modified = append(f.modified, req)
	return nil
}

func TestRetrieveACIs(t *testing.T) {
	conn := &fakeConn{entries: []*ldap.Entry{
		ldap.NewEntry("dc=example,dc=com", map[string][]string{"aci": {peopleACI, selfACI}}),
		ldap.NewEntry("ou=groups,dc=example,dc=com", map[string][]string{"ACI": {"(broken"}}),
	}}

	got, err := NewAccessor(conn, nil, nil).RetrieveACIs(context.Background(), "dc=example,dc=com")
	require.NoError(t, err)

	assert.Equal(t, []EntryACI{
		{DN: "dc=example,dc=com", Name: "people", ACI: peopleACI},
		{DN: "dc=example,dc=com", Name: "self", ACI: selfACI},
		{DN: "ou=groups,dc=example,dc=com", ACI: "(broken"},
	}, got)

	require.NotNil(t, conn.searched)
	assert.Equal(t, "(aci=*)", conn.searched.Filter)
	assert.Equal(t, ldap.ScopeWholeSubtree, conn.searched.Scope)
	assert.Equal(t, []string{"aci"}, conn.searched.Attributes)
}

func TestRetrieveACIs_Errors(t *testing.T) {
	conn := &fakeConn{err: errors.New("connection reset")}
	a := NewAccessor(conn, conn, nil)

	_, err := a.RetrieveACIs(context.Background(), "dc=example,dc=com")
	assert.ErrorContains(t, err, "connection reset")

	_, err = a.RetrieveACIs(context.Background(), "not a dn")
	assert.ErrorIs(t, err, ErrInvalidDN)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = a.RetrieveACIs(ctx, "dc=example,dc=com")
	assert.ErrorIs(t, err, context.Canceled)

	_, err = NewAccessor(nil, conn, nil).RetrieveACIs(context.Background(), "dc=x")
	assert.Error(t, err)
}

// blockingConn holds every call until release is closed.
type blockingConn struct {
	release chan struct{}
}

func (b *blockingConn) Search(*ldap.SearchRequest) (*ldap.SearchResult, error) {
	<-b.release
	return &ldap.SearchResult{}, nil
}

func (b *blockingConn) Modify(*ldap.ModifyRequest) error {
	<-b.release
	return nil
}

func TestAccessor_AbandonsOnCancel(t *testing.T) {
	conn := &blockingConn{release: make(chan struct{})}
	defer close(conn.release)
	a := NewAccessor(conn, conn, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := a.RetrieveACIs(ctx, "dc=example,dc=com")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)

	req, err := AddRequest("dc=example,dc=com", selfACI)
	require.NoError(t, err)

	ctx2, cancel2 := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel2)
	assert.ErrorIs(t, a.Apply(ctx2, req), context.Canceled)
}

func TestApply(t *testing.T) {
	conn := &fakeConn{}
	a := NewAccessor(conn, conn, nil)

	req, err := ReplaceRequest("dc=example,dc=com", peopleACI, selfACI)
	require.NoError(t, err)
	require.NoError(t, a.Apply(context.Background(), req))
	require.Len(t, conn.modified, 1)
	assert.Same(t, req, conn.modified[0])

	assert.ErrorIs(t, a.Apply(context.Background(), ldap.NewModifyRequest("dc=x", nil)), ErrNoChanges)
	assert.ErrorIs(t, a.Apply(context.Background(), nil), ErrNoChanges)

	conn.err = errors.New("insufficient access")
	assert.ErrorContains(t, a.Apply(context.Background(), req), "insufficient access")
}

func TestRequests(t *testing.T) {
	req, err := ReplaceRequest("dc=example,dc=com", peopleACI, selfACI)
	require.NoError(t, err)
	require.Len(t, req.Changes, 2)
	assert.Equal(t, uint(ldap.DeleteAttribute), req.Changes[0].Operation)
	assert.Equal(t, []string{peopleACI}, req.Changes[0].Modification.Vals)
	assert.Equal(t, uint(ldap.AddAttribute), req.Changes[1].Operation)
	assert.Equal(t, []string{selfACI}, req.Changes[1].Modification.Vals)

	req, err = AddRequest("dc=example,dc=com", selfACI)
	require.NoError(t, err)
	require.Len(t, req.Changes, 1)
	assert.Equal(t, "aci", req.Changes[0].Modification.Type)

	req, err = DeleteRequest("dc=example,dc=com", selfACI)
	require.NoError(t, err)
	assert.Equal(t, uint(ldap.DeleteAttribute), req.Changes[0].Operation)

	_, err = AddRequest("", selfACI)
	assert.ErrorIs(t, err, ErrInvalidDN)
	_, err = AddRequest("no equals sign", selfACI)
	assert.ErrorIs(t, err, ErrInvalidDN)
	_, err = AddRequest("dc=x", " ")
	assert.ErrorIs(t, err, ErrEmptyACI)
	_, err = ReplaceRequest("dc=x", "", selfACI)
	assert.ErrorIs(t, err, ErrEmptyACI)
}
