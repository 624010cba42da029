// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const promptChainSegmentation = "chain-segmentation"

// createPrompts returns the predefined prompts.
func createPrompts() []server.ServerPrompt {
	return []server.ServerPrompt{
		{
			Prompt: mcp.NewPrompt(promptChainSegmentation,
				mcp.WithPromptDescription("Order a certificate bundle and split it into leaf, intermediates and topmost certificate"),
				mcp.WithArgument("certificates",
					mcp.ArgumentDescription("Certificate file paths or base64 data, comma-separated"),
					mcp.RequiredArgument(),
				),
			),
			Handler: handleChainSegmentationPrompt,
		},
	}
}

func handleChainSegmentationPrompt(_ context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	certificates := request.Params.Arguments["certificates"]
	if certificates == "" {
		return nil, fmt.Errorf("%w: certificates argument is required", ErrInvalidInput)
	}

	messages := []mcp.PromptMessage{
		mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(fmt.Sprintf(
			"Segment the certificate chain in: %s", certificates))),
		mcp.NewPromptMessage(mcp.RoleAssistant, mcp.NewTextContent(fmt.Sprintf(
			"1. Call `%s` with format \"tree\" to see the walked chain and any certificates left out of it.\n"+
				"2. Call `%s` to get the intermediates, leaf-adjacent first.\n"+
				"3. Call `%s` to get the topmost certificate.\n\n"+
				"The walk follows subject and issuer names only. It does not verify signatures, "+
				"so the topmost certificate is not necessarily a trusted root.",
			toolOrderChain, toolSegmentIntermediates, toolFindChainRoot))),
	}

	return mcp.NewGetPromptResult("Chain segmentation workflow", messages), nil
}
