// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/H0llyW00dzZ/x509-chain-segmenter/src/config"
	"github.com/H0llyW00dzZ/x509-chain-segmenter/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/x509-chain-segmenter/src/internal/metrics"
	x509certs "github.com/H0llyW00dzZ/x509-chain-segmenter/src/internal/x509/certs"
	x509chain "github.com/H0llyW00dzZ/x509-chain-segmenter/src/internal/x509/chain"
)

var (
	// ErrInvalidInput is returned when a certificates entry is neither a
	// readable file, PEM text, nor base64 data.
	ErrInvalidInput = errors.New("mcpserver: invalid certificate input")

	// ErrTooManyCertificates is returned when the decoded input holds more
	// certificates than defaults.maxCertificates allows.
	ErrTooManyCertificates = errors.New("mcpserver: too many certificates")

	// ErrUnsupportedFormat is returned when a tool does not offer the
	// requested output format.
	ErrUnsupportedFormat = errors.New("mcpserver: unsupported output format")
)

// maxInputSize bounds each certificate file read by a tool.
const maxInputSize = 16 << 20

var (
	segmentFormats = []string{config.FormatPEM, config.FormatDER, config.FormatJSON}
	orderFormats   = []string{config.FormatPEM, config.FormatDER, config.FormatJSON, config.FormatTree, config.FormatTable}
)

// certificateJSON is the JSON form of one certificate in tool results.
type certificateJSON struct {
	Subject    string `json:"subject"`
	Issuer     string `json:"issuer"`
	SelfIssued bool   `json:"selfIssued"`
	DER        []byte `json:"der"`
}

// handleFindChainRoot returns the topmost certificate of the walked chain.
func handleFindChainRoot(_ context.Context, request mcp.CallToolRequest, svc *Services) (*mcp.CallToolResult, error) {
	format, certs, err := prepareCall(request, svc, segmentFormats)
	if err != nil {
		return failTool(svc, metrics.OpFindRoot, "failed to find chain root", err), nil
	}

	list, err := x509chain.Handles(certs)
	if err != nil {
		return failTool(svc, metrics.OpFindRoot, "failed to find chain root", err), nil
	}

	seg := x509chain.Segment(list)
	root, err := seg.Root()
	if err != nil {
		return failTool(svc, metrics.OpFindRoot, "failed to find chain root", err), nil
	}
	svc.Metrics.RecordOperation(metrics.OpFindRoot, metrics.ResultOK)
	observeWalk(svc, seg)

	var out string
	if format == config.FormatJSON {
		out, err = renderCertificateJSON(svc, root.Encoded())
	} else {
		out, err = renderEncoded(svc, format, root.Encoded())
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(out), nil
}

// handleSegmentIntermediates returns the intermediates, leaf-adjacent first.
// An empty result is empty text for pem and der, and [] for json.
func handleSegmentIntermediates(_ context.Context, request mcp.CallToolRequest, svc *Services) (*mcp.CallToolResult, error) {
	format, certs, err := prepareCall(request, svc, segmentFormats)
	if err != nil {
		return failTool(svc, metrics.OpSegmentIntermediates, "failed to segment intermediates", err), nil
	}

	list, err := x509chain.Handles(certs)
	if err != nil {
		return failTool(svc, metrics.OpSegmentIntermediates, "failed to segment intermediates", err), nil
	}

	seg := x509chain.Segment(list)
	intermediates, err := seg.Intermediates()
	if err != nil {
		return failTool(svc, metrics.OpSegmentIntermediates, "failed to segment intermediates", err), nil
	}
	svc.Metrics.RecordOperation(metrics.OpSegmentIntermediates, metrics.ResultOK)
	observeWalk(svc, seg)

	out, err := renderEncoded(svc, format, intermediates...)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(out), nil
}

// handleOrderChain returns the whole walked chain and lists the
// certificates it leaves out.
func handleOrderChain(_ context.Context, request mcp.CallToolRequest, svc *Services) (*mcp.CallToolResult, error) {
	format, certs, err := prepareCall(request, svc, orderFormats)
	if err != nil {
		return failTool(svc, metrics.OpOrderChain, "failed to order chain", err), nil
	}

	chain, err := x509chain.Order(certs)
	if err != nil {
		return failTool(svc, metrics.OpOrderChain, "failed to order chain", err), nil
	}
	svc.Metrics.RecordOperation(metrics.OpOrderChain, metrics.ResultOK)
	svc.Metrics.ObserveChainLength(len(chain.Certs))
	warnUnplaced(svc, chain.Unplaced)

	switch format {
	case config.FormatDER:
		return mcp.NewToolResultText(base64.StdEncoding.EncodeToString(svc.Certs.EncodeMultipleDER(chain.Certs))), nil
	case config.FormatJSON:
		data, err := chain.ToVisualizationJSON()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	case config.FormatTree:
		return mcp.NewToolResultText(chain.RenderASCIITree()), nil
	case config.FormatTable:
		return mcp.NewToolResultText(chain.RenderTable()), nil
	default:
		return mcp.NewToolResultText(string(svc.Certs.EncodeMultiplePEM(chain.Certs))), nil
	}
}

// handleGetMetrics renders the recorded operation counters.
func handleGetMetrics(_ context.Context, request mcp.CallToolRequest, svc *Services) (*mcp.CallToolResult, error) {
	format := request.GetString("format", metricsFormatTable)
	if format != metricsFormatTable && format != metricsFormatJSON {
		return mcp.NewToolResultError(fmt.Sprintf("%v: %q", ErrUnsupportedFormat, format)), nil
	}

	samples, err := svc.Metrics.Snapshot()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to gather metrics: %v", err)), nil
	}

	if format == metricsFormatJSON {
		if samples == nil {
			samples = []metrics.Sample{}
		}
		data, err := json.MarshalIndent(samples, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to encode metrics: %v", err)), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	}

	return mcp.NewToolResultText(renderMetricsTable(samples)), nil
}

// prepareCall resolves the output format and decodes the certificates
// argument of a segmentation tool.
func prepareCall(request mcp.CallToolRequest, svc *Services, allowed []string) (string, []*x509.Certificate, error) {
	format, err := resolveFormat(request.GetString("format", ""), svc.Config.Defaults.Format, allowed)
	if err != nil {
		return "", nil, err
	}

	raw, err := request.RequireString("certificates")
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	certs, err := readCertificates(svc, raw)
	if err != nil {
		return "", nil, err
	}
	return format, certs, nil
}

// resolveFormat picks the requested format, or the configured default when
// none was requested. A configured default the tool cannot produce falls
// back to pem.
func resolveFormat(requested, fallback string, allowed []string) (string, error) {
	if requested != "" {
		if !slices.Contains(allowed, requested) {
			return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, requested)
		}
		return requested, nil
	}

	if slices.Contains(allowed, fallback) {
		return fallback, nil
	}
	return config.FormatPEM, nil
}

// readCertificates decodes every comma-separated entry of raw and
// concatenates the results in order.
func readCertificates(svc *Services, raw string) ([]*x509.Certificate, error) {
	var certs []*x509.Certificate
	for entry := range strings.SplitSeq(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		data, err := loadEntry(entry)
		if err != nil {
			return nil, err
		}

		decoded, err := svc.Certs.DecodeBundle(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		certs = append(certs, decoded...)
		if limit := svc.Config.Defaults.MaxCertificates; len(certs) > limit {
			return nil, fmt.Errorf("%w: more than %d", ErrTooManyCertificates, limit)
		}
	}

	if len(certs) == 0 {
		return nil, fmt.Errorf("%w: no certificates given", ErrInvalidInput)
	}
	return certs, nil
}

// loadEntry returns the bytes named by one certificates entry: a file
// path, inline PEM text, or base64 data, tried in that order.
func loadEntry(entry string) ([]byte, error) {
	data, err := gc.ReadFile(entry, maxInputSize)
	if err == nil {
		return data, nil
	}
	if errors.Is(err, gc.ErrTooLarge) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if strings.Contains(entry, "-----BEGIN") {
		return []byte(entry), nil
	}

	decoded, err := base64.StdEncoding.DecodeString(entry)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is neither a readable file nor base64 data", ErrInvalidInput, truncate(entry, 64))
	}
	return decoded, nil
}

// renderEncoded writes DER certificates in format. The json form is always
// an array, empty when ders is.
func renderEncoded(svc *Services, format string, ders ...[]byte) (string, error) {
	var sb strings.Builder
	switch format {
	case config.FormatDER:
		var all []byte
		for _, der := range ders {
			all = append(all, der...)
		}
		return base64.StdEncoding.EncodeToString(all), nil
	case config.FormatJSON:
		docs := make([]certificateJSON, 0, len(ders))
		for _, der := range ders {
			doc, err := newCertificateJSON(svc, der)
			if err != nil {
				return "", err
			}
			docs = append(docs, doc)
		}

		data, err := json.MarshalIndent(docs, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		for _, der := range ders {
			sb.Write(svc.Certs.EncodeRawPEM(der))
		}
		return sb.String(), nil
	}
}

// renderCertificateJSON writes one certificate as a json object.
func renderCertificateJSON(svc *Services, der []byte) (string, error) {
	doc, err := newCertificateJSON(svc, der)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func newCertificateJSON(svc *Services, der []byte) (certificateJSON, error) {
	cert, err := svc.Certs.Decode(der)
	if err != nil {
		return certificateJSON{}, err
	}
	return certificateJSON{
		Subject:    cert.Subject.String(),
		Issuer:     cert.Issuer.String(),
		SelfIssued: string(cert.RawSubject) == string(cert.RawIssuer),
		DER:        cert.Raw,
	}, nil
}

// failTool records a failed operation and converts err into a tool error
// result.
func failTool(svc *Services, op, prefix string, err error) *mcp.CallToolResult {
	result := metrics.Result(err)
	if errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrTooManyCertificates) || errors.Is(err, ErrUnsupportedFormat) {
		result = metrics.ResultInvalidArgument
	}
	svc.Metrics.RecordOperation(op, result)
	svc.Log.Warnf("%s: %v", op, err)
	return mcp.NewToolResultError(fmt.Sprintf("%s: %v", prefix, err))
}

// observeWalk records the chain length of seg and warns about the
// certificates its walk left out.
func observeWalk(svc *Services, seg *x509chain.Segmentation) {
	svc.Metrics.ObserveChainLength(len(seg.Chain))

	certs := make([]*x509.Certificate, 0, len(seg.Unplaced))
	for _, c := range seg.Unplaced {
		if h, ok := c.(x509certs.Handle); ok {
			certs = append(certs, h.Certificate)
		}
	}
	warnUnplaced(svc, certs)
}

func warnUnplaced(svc *Services, certs []*x509.Certificate) {
	if !svc.Config.Defaults.WarnUnplaced {
		return
	}
	for _, cert := range certs {
		svc.Log.Warnf("certificate %q is not part of the chain", cert.Subject.String())
	}
}

// renderMetricsTable renders samples as a markdown table.
func renderMetricsTable(samples []metrics.Sample) string {
	if len(samples) == 0 {
		return "No operations recorded yet"
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"Metric", "Labels", "Value"})

	rows := make([][]string, 0, len(samples))
	for _, s := range samples {
		rows = append(rows, []string{s.Name, metrics.LabelString(s.Labels), fmt.Sprintf("%g", s.Value)})
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
