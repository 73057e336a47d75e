package flows

import (
	"context"
	"strings"

	"github.com/MuhamadAgungGumelar/marketing-insights-be/internal/shared/validation"
)

const CampaignImageFlowName = "campaign-image"

const (
	minImagePromptLen = 10
	maxImagePromptLen = 1000
	imageDataPrefix   = "data:image/"
)

var imageStyles = []string{"", "photo", "illustration", "3d"}

type CampaignImageInput struct {
	Prompt string `json:"prompt"`
	Style  string `json:"style,omitempty"`
}

type CampaignImageOutput struct {
	ImageDataURI string `json:"imageDataUri"`
}

// NewCampaignImageFlow renders a campaign visual from a text brief
func NewCampaignImageFlow(model Model) Flow {
	return &definition[CampaignImageInput, CampaignImageOutput]{
		name:          CampaignImageFlowName,
		description:   "Generate a campaign image from a short creative brief",
		validateInput: validateCampaignImageInput,
		run: func(ctx context.Context, in CampaignImageInput) (CampaignImageOutput, error) {
			b64, err := model.GenerateImage(ctx, imagePrompt(in))
			if err != nil {
				return CampaignImageOutput{}, err
			}
			if b64 == "" {
				return CampaignImageOutput{}, nil
			}
			return CampaignImageOutput{ImageDataURI: "data:image/png;base64," + b64}, nil
		},
		validateOutput: func(out CampaignImageOutput) []validation.FieldError {
			var c validation.Checker
			c.Check(strings.HasPrefix(out.ImageDataURI, imageDataPrefix) && len(out.ImageDataURI) > len(imageDataPrefix),
				"imageDataUri", "must be a data URI starting with %q", imageDataPrefix)
			return c.Errors()
		},
	}
}

func validateCampaignImageInput(in CampaignImageInput) []validation.FieldError {
	var c validation.Checker
	if c.Required("prompt", in.Prompt) {
		c.Length("prompt", strings.TrimSpace(in.Prompt), minImagePromptLen, maxImagePromptLen)
	}
	c.OneOf("style", in.Style, imageStyles...)
	return c.Errors()
}

func imagePrompt(in CampaignImageInput) string {
	prompt := strings.TrimSpace(in.Prompt)
	if in.Style != "" {
		prompt += ". Style: " + in.Style + "."
	}
	return prompt
}
