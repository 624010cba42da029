// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// RenderASCIITree renders the ordered chain as an ASCII tree diagram.
//
// Each line shows the certificate's display name and its role. A check mark
// means the certificate is self-issued; a dot means it is not. Certificates
// left out by the walk are listed after the chain.
//
// Returns:
//   - string: ASCII tree representation of the certificate chain
func (ch *Chain) RenderASCIITree() string {
	if len(ch.Certs) == 0 {
		return "No certificates in chain"
	}

	var result strings.Builder
	for i, cert := range ch.Certs {
		connector := "├── "
		if i == len(ch.Certs)-1 {
			connector = "└── "
		}

		marker := "·"
		if ch.IsSelfIssued(cert) {
			marker = "✓"
		}

		result.WriteString(fmt.Sprintf("%s[%s] %s (%s)\n", connector, marker, displayName(cert), ch.getCertificateRole(i)))
	}

	if len(ch.Unplaced) > 0 {
		result.WriteString(fmt.Sprintf("\nNot part of the chain (%d):\n", len(ch.Unplaced)))
		for _, cert := range ch.Unplaced {
			result.WriteString("  - " + displayName(cert) + "\n")
		}
	}

	return result.String()
}

// RenderTable renders the certificate chain as a formatted markdown table.
//
// It displays certificate details including role, subject, issuer, validity dates,
// and key size in a tabular format using tablewriter.
//
// Returns:
//   - string: Markdown table representation of the certificate chain
func (ch *Chain) RenderTable() string {
	if len(ch.Certs) == 0 {
		return "No certificates to display"
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)

	table.Header([]string{"#", "Role", "Subject", "Issuer", "Valid Until", "Key", "Self-Issued"})

	var rows [][]string
	for i, cert := range ch.Certs {
		algo, bits := keyInfo(cert)
		key := algo
		if bits > 0 {
			key = fmt.Sprintf("%d-bit %s", bits, algo)
		}

		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			ch.getCertificateRole(i),
			displayName(cert),
			issuerName(cert),
			cert.NotAfter.Format("2006-01-02"),
			key,
			fmt.Sprintf("%t", ch.IsSelfIssued(cert)),
		})
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}

// ToVisualizationJSON converts the certificate chain to structured JSON for external tools.
//
// The document lists the ordered certificates, the issued_by relationships
// between neighbours, and the subjects of unplaced certificates.
//
// Returns:
//   - []byte: JSON representation of the certificate chain
//   - error: Error if JSON marshaling fails
func (ch *Chain) ToVisualizationJSON() ([]byte, error) {
	type CertificateVizData struct {
		Index              int       `json:"index"`
		Role               string    `json:"role"`
		Subject            string    `json:"subject"`
		Issuer             string    `json:"issuer"`
		SerialNumber       string    `json:"serialNumber"`
		SignatureAlgorithm string    `json:"signatureAlgorithm"`
		PublicKeyAlgorithm string    `json:"publicKeyAlgorithm"`
		KeySize            int       `json:"keySize"`
		NotBefore          time.Time `json:"notBefore"`
		NotAfter           time.Time `json:"notAfter"`
		IsCA               bool      `json:"isCA"`
		SelfIssued         bool      `json:"selfIssued"`
	}

	type RelationshipData struct {
		FromIndex int    `json:"fromIndex"`
		ToIndex   int    `json:"toIndex"`
		Type      string `json:"type"`
	}

	type VisualizationData struct {
		Timestamp     string               `json:"timestamp"`
		ChainLength   int                  `json:"chainLength"`
		Certificates  []CertificateVizData `json:"certificates"`
		Relationships []RelationshipData   `json:"relationships"`
		Unplaced      []string             `json:"unplaced"`
	}

	data := VisualizationData{
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		ChainLength:   len(ch.Certs),
		Certificates:  make([]CertificateVizData, len(ch.Certs)),
		Relationships: make([]RelationshipData, 0, len(ch.Certs)),
		Unplaced:      make([]string, 0, len(ch.Unplaced)),
	}

	for i, cert := range ch.Certs {
		algo, bits := keyInfo(cert)
		data.Certificates[i] = CertificateVizData{
			Index:              i,
			Role:               ch.getCertificateRole(i),
			Subject:            cert.Subject.String(),
			Issuer:             cert.Issuer.String(),
			SerialNumber:       cert.SerialNumber.String(),
			SignatureAlgorithm: cert.SignatureAlgorithm.String(),
			PublicKeyAlgorithm: algo,
			KeySize:            bits,
			NotBefore:          cert.NotBefore,
			NotAfter:           cert.NotAfter,
			IsCA:               cert.IsCA,
			SelfIssued:         ch.IsSelfIssued(cert),
		}
	}

	// Each certificate names the next one as its issuer
	for i := 0; i < len(ch.Certs)-1; i++ {
		data.Relationships = append(data.Relationships, RelationshipData{
			FromIndex: i,
			ToIndex:   i + 1,
			Type:      "issued_by",
		})
	}

	for _, cert := range ch.Unplaced {
		data.Unplaced = append(data.Unplaced, cert.Subject.String())
	}

	return json.MarshalIndent(data, "", "  ")
}

// getCertificateRole determines the role of a certificate in the chain.
//
// Parameters:
//   - index: Zero-based position of the certificate in the chain
//
// Returns:
//   - string: Role description
func (ch *Chain) getCertificateRole(index int) string {
	total := len(ch.Certs)
	switch {
	case total == 1 && ch.IsSelfIssued(ch.Certs[0]):
		return "Self-Issued Certificate"
	case index == 0:
		return "End-Entity (Leaf) Certificate"
	case index == total-1 && ch.IsSelfIssued(ch.Certs[index]):
		return "Root CA Certificate"
	case index == total-1:
		return "Topmost Certificate (not self-issued)"
	default:
		return "Intermediate CA Certificate"
	}
}

// displayName prefers the common name and falls back to the full subject.
func displayName(cert *x509.Certificate) string {
	if cert.Subject.CommonName != "" {
		return cert.Subject.CommonName
	}
	return cert.Subject.String()
}

func issuerName(cert *x509.Certificate) string {
	if cert.Issuer.CommonName != "" {
		return cert.Issuer.CommonName
	}
	return cert.Issuer.String()
}

// keyInfo returns the public key algorithm name and its size in bits.
func keyInfo(cert *x509.Certificate) (string, int) {
	switch pubKey := cert.PublicKey.(type) {
	case *rsa.PublicKey:
		return "RSA", pubKey.Size() * 8
	case *ecdsa.PublicKey:
		return "ECDSA", pubKey.Curve.Params().BitSize
	case ed25519.PublicKey:
		return "Ed25519", 256
	default:
		return cert.PublicKeyAlgorithm.String(), 0
	}
}
