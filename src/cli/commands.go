// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"crypto/x509"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/x509-chain-segmenter/src/config"
	x509certs "github.com/H0llyW00dzZ/x509-chain-segmenter/src/internal/x509/certs"
	x509chain "github.com/H0llyW00dzZ/x509-chain-segmenter/src/internal/x509/chain"
)

// certificateJSON is the JSON form of one certificate in root and
// intermediates output.
type certificateJSON struct {
	Subject    string `json:"subject"`
	Issuer     string `json:"issuer"`
	SelfIssued bool   `json:"selfIssued"`
	DER        []byte `json:"der"`
}

func newCertificateJSON(cert *x509.Certificate) certificateJSON {
	return certificateJSON{
		Subject:    cert.Subject.String(),
		Issuer:     cert.Issuer.String(),
		SelfIssued: string(cert.RawSubject) == string(cert.RawIssuer),
		DER:        cert.Raw,
	}
}

// runRoot prints the topmost certificate.
func (o *options) runRoot(cmd *cobra.Command, _ []string) error {
	format, err := o.resolveFormat(segmentFormats)
	if err != nil {
		return err
	}

	certs, err := o.loadCertificates(cmd.Context())
	if err != nil {
		return err
	}

	list, err := x509chain.Handles(certs)
	if err != nil {
		return err
	}

	seg := x509chain.Segment(list)
	root, err := seg.Root()
	if err != nil {
		return err
	}
	o.reportUnplaced(seg.Unplaced)

	switch format {
	case config.FormatDER:
		return o.write(cmd, root.Encoded())
	case config.FormatJSON:
		cert, err := o.decoder.Decode(root.Encoded())
		if err != nil {
			return err
		}
		return o.writeJSON(cmd, newCertificateJSON(cert))
	default:
		return o.write(cmd, o.decoder.EncodeRawPEM(root.Encoded()))
	}
}

// runIntermediates prints the intermediates, leaf-adjacent first. An empty
// result writes nothing for pem and der, and [] for json.
func (o *options) runIntermediates(cmd *cobra.Command, _ []string) error {
	format, err := o.resolveFormat(segmentFormats)
	if err != nil {
		return err
	}

	certs, err := o.loadCertificates(cmd.Context())
	if err != nil {
		return err
	}

	list, err := x509chain.Handles(certs)
	if err != nil {
		return err
	}

	seg := x509chain.Segment(list)
	intermediates, err := seg.Intermediates()
	if err != nil {
		return err
	}
	o.reportUnplaced(seg.Unplaced)

	var out []byte
	switch format {
	case config.FormatDER:
		for _, der := range intermediates {
			out = append(out, der...)
		}
		return o.write(cmd, out)
	case config.FormatJSON:
		docs := make([]certificateJSON, 0, len(intermediates))
		for _, der := range intermediates {
			cert, err := o.decoder.Decode(der)
			if err != nil {
				return err
			}
			docs = append(docs, newCertificateJSON(cert))
		}
		return o.writeJSON(cmd, docs)
	default:
		for _, der := range intermediates {
			out = append(out, o.decoder.EncodeRawPEM(der)...)
		}
		return o.write(cmd, out)
	}
}

// runOrder prints the whole ordered chain.
func (o *options) runOrder(cmd *cobra.Command, _ []string) error {
	format, err := o.resolveFormat(orderFormats)
	if err != nil {
		return err
	}

	certs, err := o.loadCertificates(cmd.Context())
	if err != nil {
		return err
	}

	chain, err := x509chain.Order(certs)
	if err != nil {
		return err
	}
	o.warnUnplaced(chain.Unplaced)

	switch format {
	case config.FormatDER:
		return o.write(cmd, chain.EncodeMultipleDER(chain.Certs))
	case config.FormatJSON:
		data, err := chain.ToVisualizationJSON()
		if err != nil {
			return err
		}
		return o.write(cmd, append(data, '\n'))
	case config.FormatTree:
		return o.write(cmd, []byte(chain.RenderASCIITree()))
	case config.FormatTable:
		return o.write(cmd, []byte(chain.RenderTable()))
	default:
		return o.write(cmd, chain.EncodeMultiplePEM(chain.Certs))
	}
}

// reportUnplaced warns about the certificates a segmentation left out.
func (o *options) reportUnplaced(unplaced []x509chain.Certificate) {
	if !o.cfg.Defaults.WarnUnplaced {
		return
	}

	certs := make([]*x509.Certificate, 0, len(unplaced))
	for _, c := range unplaced {
		if h, ok := c.(x509certs.Handle); ok {
			certs = append(certs, h.Certificate)
		}
	}
	o.warnUnplaced(certs)
}

func (o *options) writeJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return o.write(cmd, append(data, '\n'))
}
