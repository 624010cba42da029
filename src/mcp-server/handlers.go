// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/H0llyW00dzZ/x509-chain-segmenter/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/x509-chain-segmenter/src/mcp-server/templates"
)

type toolInfo struct {
	Name string
	Role string
}

// instructionData feeds X509_instructions.md.
type instructionData struct {
	ServerName string
	Tools      []toolInfo
}

// loadInstructions renders the server instructions sent to clients on
// initialize.
func loadInstructions(serverName string, tools []ToolDefinition) (string, error) {
	content, err := templates.MagicEmbed.ReadFile("X509_instructions.md")
	if err != nil {
		return "", fmt.Errorf("failed to load instructions template: %w", err)
	}

	tmpl, err := template.New("instructions").Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("failed to parse instructions template: %w", err)
	}

	data := instructionData{ServerName: serverName}
	for _, tool := range tools {
		data.Tools = append(data.Tools, toolInfo{Name: tool.Tool.Name, Role: tool.Role})
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if err := tmpl.Execute(buf, data); err != nil {
		return "", fmt.Errorf("failed to execute instructions template: %w", err)
	}
	return strings.TrimSpace(string(buf.Bytes())), nil
}
