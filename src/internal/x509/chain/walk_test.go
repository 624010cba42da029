// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain_test

import (
	"crypto/x509"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/x509-chain-segmenter/src/internal/testcerts"
	x509certs "github.com/H0llyW00dzZ/x509-chain-segmenter/src/internal/x509/certs"
	x509chain "github.com/H0llyW00dzZ/x509-chain-segmenter/src/internal/x509/chain"
)

// fakeCert is a name-only certificate used to exercise ordering rules
// without DER fixtures.
type fakeCert struct {
	subject string
	issuer  string
}

func (f *fakeCert) SubjectName() string { return f.subject }
func (f *fakeCert) IssuerName() string  { return f.issuer }
func (f *fakeCert) Encoded() []byte     { return []byte(f.subject) }

func fake(subject, issuer string) *fakeCert { return &fakeCert{subject: subject, issuer: issuer} }

type fixtures struct {
	ee, second, intermediate, ca x509certs.Handle
}

func loadFixtures() fixtures {
	h := x509certs.NewHandles(testcerts.Hierarchy())
	return fixtures{ee: h[0], second: h[1], intermediate: h[2], ca: h[3]}
}

func list(certs ...x509chain.Certificate) []x509chain.Certificate { return certs }

func subjects(chain []x509chain.Certificate) []string {
	var out []string
	for _, c := range chain {
		out = append(out, c.SubjectName())
	}
	return out
}

func TestSegmentIntermediates_Invalid(t *testing.T) {
	f := loadFixtures()

	tests := []struct {
		name  string
		certs []x509chain.Certificate
	}{
		{name: "Empty List", certs: nil},
		{name: "Single Certificate", certs: list(f.ca)},
		{name: "Single End-Entity", certs: list(f.ee)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intermediates, err := x509chain.SegmentIntermediates(tt.certs)
			require.Error(t, err)
			assert.ErrorIs(t, err, x509chain.ErrInvalidArgument, "lists of fewer than two can't be segmented")
			assert.ErrorIs(t, err, x509chain.ErrTooFewCertificates)
			assert.Nil(t, intermediates, "no partial result on error")
		})
	}
}

func TestSegmentIntermediates_Valid(t *testing.T) {
	f := loadFixtures()

	tests := []struct {
		name     string
		certs    []x509chain.Certificate
		expected [][]byte
	}{
		{
			name:     "Leaf And Issuer",
			certs:    list(f.ee, f.second),
			expected: [][]byte{},
		},
		{
			name:     "One Intermediate",
			certs:    list(f.ee, f.second, f.intermediate),
			expected: [][]byte{f.second.Raw},
		},
		{
			name:     "Full Chain",
			certs:    list(f.ee, f.second, f.intermediate, f.ca),
			expected: [][]byte{f.second.Raw, f.intermediate.Raw},
		},
		{
			name:     "Full Chain Reversed",
			certs:    list(f.ca, f.intermediate, f.second, f.ee),
			expected: [][]byte{f.second.Raw, f.intermediate.Raw},
		},
		{
			name:     "Full Chain Shuffled",
			certs:    list(f.intermediate, f.ee, f.ca, f.second),
			expected: [][]byte{f.second.Raw, f.intermediate.Raw},
		},
		{
			name:     "Root Only With Intermediate",
			certs:    list(f.intermediate, f.ca),
			expected: [][]byte{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intermediates, err := x509chain.SegmentIntermediates(tt.certs)
			require.NoError(t, err, "should have segmented OK")
			require.NotNil(t, intermediates)
			require.Len(t, intermediates, len(tt.expected))

			for i := range tt.expected {
				assert.Equal(t, tt.expected[i], intermediates[i], "intermediate %d must match byte for byte", i)
			}
		})
	}
}

func TestSegmentIntermediates_MatchesFixtureDER(t *testing.T) {
	f := loadFixtures()

	intermediates, err := x509chain.SegmentIntermediates(list(f.ee, f.second, f.intermediate, f.ca))
	require.NoError(t, err)
	require.Len(t, intermediates, 2)

	first, err := x509.ParseCertificate(intermediates[0])
	require.NoError(t, err)
	assert.Equal(t, "ca-second-intermediate", first.Subject.CommonName)

	last, err := x509.ParseCertificate(intermediates[1])
	require.NoError(t, err)
	assert.Equal(t, "ca-intermediate", last.Subject.CommonName)
}

func TestFindRoot(t *testing.T) {
	f := loadFixtures()

	tests := []struct {
		name       string
		certs      []x509chain.Certificate
		expectedCN string
	}{
		{name: "Chain Of Two", certs: list(f.intermediate, f.ca), expectedCN: "ca"},
		{name: "Chain Of Two Reversed", certs: list(f.ca, f.intermediate), expectedCN: "ca"},
		{name: "Chain Of Four", certs: list(f.ee, f.second, f.intermediate, f.ca), expectedCN: "ca"},
		{name: "Self-Issued Alone", certs: list(f.ca), expectedCN: "ca"},
		{name: "Truncated Chain", certs: list(f.ee, f.second), expectedCN: "ca-second-intermediate"},
		{name: "Leaf Alone", certs: list(f.ee), expectedCN: "ee"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := x509chain.FindRoot(tt.certs)
			require.NoError(t, err, "should have fetched the root OK")
			require.NotNil(t, root, "root cert should be filled in")

			handle, ok := root.(x509certs.Handle)
			require.True(t, ok)
			assert.Equal(t, tt.expectedCN, handle.Subject.CommonName, "root CN should match")
		})
	}
}

func TestFindRoot_Idempotent(t *testing.T) {
	f := loadFixtures()
	certs := list(f.intermediate, f.ca)

	first, err := x509chain.FindRoot(certs)
	require.NoError(t, err)

	second, err := x509chain.FindRoot(certs)
	require.NoError(t, err, "should have fetched the root OK the second time")

	assert.Equal(t, first.SubjectName(), second.SubjectName())
	assert.Equal(t, first.Encoded(), second.Encoded())
	assert.Equal(t, f.ca.Raw, second.Encoded())
}

func TestFindRoot_Empty(t *testing.T) {
	root, err := x509chain.FindRoot(nil)
	assert.ErrorIs(t, err, x509chain.ErrInvalidArgument)
	assert.ErrorIs(t, err, x509chain.ErrEmptyList)
	assert.Nil(t, root, "root cert should be empty")
}

func TestWalk_OrderIndependent(t *testing.T) {
	f := loadFixtures()
	base := list(f.ee, f.second, f.intermediate, f.ca)
	expected := subjects(base)

	for _, perm := range permutations(base) {
		chain, err := x509chain.Walk(perm)
		require.NoError(t, err)
		assert.Equal(t, expected, subjects(chain))
	}
}

func TestWalk_Invariants(t *testing.T) {
	f := loadFixtures()

	chain, err := x509chain.Walk(list(f.ca, f.ee, f.intermediate, f.second))
	require.NoError(t, err)
	require.Len(t, chain, 4)

	for i := 0; i < len(chain)-1; i++ {
		assert.Equal(t, chain[i].IssuerName(), chain[i+1].SubjectName(), "link %d must follow issuer names", i)
	}
	assert.True(t, x509chain.IsSelfIssued(chain[len(chain)-1]))
	assert.False(t, x509chain.IsSelfIssued(chain[0]))
}

func TestWalk_Errors(t *testing.T) {
	f := loadFixtures()

	tests := []struct {
		name     string
		certs    []x509chain.Certificate
		expected error
		kind     error
	}{
		{
			name:     "Empty",
			certs:    nil,
			expected: x509chain.ErrEmptyChain,
			kind:     x509chain.ErrNotFound,
		},
		{
			name:     "Cycle Of Two",
			certs:    list(fake("a", "b"), fake("b", "a")),
			expected: x509chain.ErrNoLeaf,
			kind:     x509chain.ErrNotFound,
		},
		{
			name:     "Cycle Of Three",
			certs:    list(fake("a", "c"), fake("b", "a"), fake("c", "b")),
			expected: x509chain.ErrNoLeaf,
			kind:     x509chain.ErrNotFound,
		},
		{
			name:     "Duplicate Self-Issued",
			certs:    list(fake("ca", "ca"), fake("ca", "ca")),
			expected: x509chain.ErrNoLeaf,
			kind:     x509chain.ErrNotFound,
		},
		{
			name:     "Nil Entry",
			certs:    list(fake("ee", "ca"), nil),
			expected: x509chain.ErrNilCertificate,
			kind:     x509chain.ErrInvalidArgument,
		},
		{
			name:     "Zero Handle",
			certs:    list(f.ee, x509certs.Handle{}),
			expected: x509chain.ErrNilCertificate,
			kind:     x509chain.ErrInvalidArgument,
		},
		{
			name:     "Empty Encoding",
			certs:    list(fake("ee", "ca"), fake("", "ee")),
			expected: x509chain.ErrNilCertificate,
			kind:     x509chain.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				chain []x509chain.Certificate
				err   error
			)
			require.NotPanics(t, func() { chain, err = x509chain.Walk(tt.certs) })
			assert.ErrorIs(t, err, tt.expected)
			assert.ErrorIs(t, err, tt.kind)
			assert.Nil(t, chain)
		})
	}
}

func TestOperations_PropagateNotFound(t *testing.T) {
	cycle := list(fake("a", "b"), fake("b", "a"))

	_, err := x509chain.FindRoot(cycle)
	assert.ErrorIs(t, err, x509chain.ErrNotFound)

	intermediates, err := x509chain.SegmentIntermediates(cycle)
	assert.ErrorIs(t, err, x509chain.ErrNotFound)
	assert.Nil(t, intermediates)
}

func TestWalk_TieBreaks(t *testing.T) {
	tests := []struct {
		name     string
		certs    []x509chain.Certificate
		expected []string
		unplaced []string
	}{
		{
			name:     "Disconnected Picks First Leaf",
			certs:    list(fake("x", "y"), fake("ee", "int"), fake("int", "root"), fake("root", "root")),
			expected: []string{"x"},
			unplaced: []string{"ee", "int", "root"},
		},
		{
			name:     "Disconnected Second Component First",
			certs:    list(fake("ee", "int"), fake("int", "root"), fake("root", "root"), fake("x", "y")),
			expected: []string{"ee", "int", "root"},
			unplaced: []string{"x"},
		},
		{
			name:     "Duplicate Issuer Subject Picks First",
			certs:    list(fake("ee", "int"), fake("int", "root-a"), fake("int", "root-b"), fake("root-a", "root-a")),
			expected: []string{"ee", "int", "root-a"},
			unplaced: []string{"int"},
		},
		{
			name:     "Stops At Self-Issued",
			certs:    list(fake("ee", "ca"), fake("ca", "ca"), fake("other", "ca")),
			expected: []string{"ee", "ca"},
			unplaced: []string{"other"},
		},
		{
			name:     "Self-Issued Leaf",
			certs:    list(fake("solo", "solo")),
			expected: []string{"solo"},
		},
		{
			name:     "Cross Signed Top Is Not Self-Issued",
			certs:    list(fake("ee", "int"), fake("int", "cross"), fake("cross", "elsewhere")),
			expected: []string{"ee", "int", "cross"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chain, unplaced, err := x509chain.Partition(tt.certs)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, subjects(chain))
			assert.Equal(t, tt.unplaced, subjects(unplaced))
		})
	}
}

func TestSegmentIntermediates_Cardinality(t *testing.T) {
	for n := 2; n <= 8; n++ {
		certs := make([]x509chain.Certificate, n)
		for i := 0; i < n; i++ {
			issuer := string(rune('a' + i + 1))
			if i == n-1 {
				issuer = string(rune('a' + i))
			}
			certs[i] = fake(string(rune('a'+i)), issuer)
		}

		// Reverse the input so order has to be recovered.
		for i, j := 0, len(certs)-1; i < j; i, j = i+1, j-1 {
			certs[i], certs[j] = certs[j], certs[i]
		}

		intermediates, err := x509chain.SegmentIntermediates(certs)
		require.NoError(t, err)
		require.Len(t, intermediates, n-2)

		for i, der := range intermediates {
			assert.Equal(t, string(rune('a'+i+1)), string(der), "intermediates must be ordered leaf-adjacent first")
		}
	}
}

func permutations(in []x509chain.Certificate) [][]x509chain.Certificate {
	if len(in) <= 1 {
		return [][]x509chain.Certificate{append([]x509chain.Certificate(nil), in...)}
	}

	var out [][]x509chain.Certificate
	for i := range in {
		rest := make([]x509chain.Certificate, 0, len(in)-1)
		rest = append(rest, in[:i]...)
		rest = append(rest, in[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]x509chain.Certificate{in[i]}, p...))
		}
	}
	return out
}

func TestSegment(t *testing.T) {
	f := loadFixtures()
	stray := fake("stray", "elsewhere")

	seg := x509chain.Segment(list(f.intermediate, stray, f.ca, f.ee, f.second))
	require.NoError(t, seg.Err())
	assert.Equal(t, subjects(list(f.ee, f.second, f.intermediate, f.ca)), subjects(seg.Chain))
	assert.Equal(t, list(stray), seg.Unplaced)

	root, err := seg.Root()
	require.NoError(t, err)
	assert.Equal(t, f.ca.Raw, root.Encoded())

	intermediates, err := seg.Intermediates()
	require.NoError(t, err)
	assert.Equal(t, [][]byte{f.second.Raw, f.intermediate.Raw}, intermediates)
}

func TestSegment_MatchesOperations(t *testing.T) {
	f := loadFixtures()

	tests := []struct {
		name  string
		certs []x509chain.Certificate
	}{
		{name: "Empty", certs: nil},
		{name: "Single", certs: list(f.ee)},
		{name: "Leaf And Issuer", certs: list(f.second, f.ee)},
		{name: "Full Chain", certs: list(f.ca, f.intermediate, f.second, f.ee)},
		{name: "Cycle", certs: list(fake("a", "b"), fake("b", "a"))},
		{name: "Zero Handle", certs: list(f.ee, x509certs.Handle{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg := x509chain.Segment(tt.certs)

			wantRoot, wantRootErr := x509chain.FindRoot(tt.certs)
			root, err := seg.Root()
			assert.Equal(t, wantRootErr, err)
			assert.Equal(t, wantRoot, root)

			wantInter, wantInterErr := x509chain.SegmentIntermediates(tt.certs)
			inter, err := seg.Intermediates()
			assert.Equal(t, wantInterErr, err)
			assert.Equal(t, wantInter, inter)
		})
	}
}

func TestSegment_PreconditionsBeforeWalkErrors(t *testing.T) {
	seg := x509chain.Segment(nil)
	assert.ErrorIs(t, seg.Err(), x509chain.ErrEmptyChain)

	_, err := seg.Root()
	assert.ErrorIs(t, err, x509chain.ErrEmptyList)

	_, err = seg.Intermediates()
	assert.ErrorIs(t, err, x509chain.ErrTooFewCertificates)

	seg = x509chain.Segment(list(x509certs.Handle{}))
	assert.ErrorIs(t, seg.Err(), x509chain.ErrNilCertificate)

	_, err = seg.Root()
	assert.ErrorIs(t, err, x509chain.ErrNilCertificate)

	_, err = seg.Intermediates()
	assert.ErrorIs(t, err, x509chain.ErrTooFewCertificates, "a single entry fails the count check first")
}
