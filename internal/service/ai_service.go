package service

import (
	"context"
	"fmt"
	"strings"

	"socialflow/internal/transfer"
)

// AIService is the demo copy generator: canned templates with the topic
// interpolated and light tone rewrites. No model behind it.
type AIService interface {
	Generate(ctx context.Context, req *transfer.GenerationRequest) (*transfer.GenerationResult, error)
}

type aiService struct{}

func NewAIService() AIService {
	return &aiService{}
}

func (s *aiService) Generate(ctx context.Context, req *transfer.GenerationRequest) (*transfer.GenerationResult, error) {
	if req.Topic == "" {
		return nil, fmt.Errorf("%w: topic is required", ErrValidation)
	}

	tone := req.Tone
	if tone == "" {
		tone = "professional"
	}

	template, ok := contentTemplates[req.Template]
	if !ok {
		template = contentTemplates["general"]
	}
	content := strings.ReplaceAll(template, "{topic}", req.Topic)
	content = adjustTone(content, tone)

	variants := []string{
		fmt.Sprintf("Have you been struggling with %s lately? We get it - it's a complex challenge.\n\nOur team has developed a streamlined approach that makes %s management easier than ever. The results speak for themselves: improved efficiency, better outcomes, and happier teams.", req.Topic, req.Topic),
		fmt.Sprintf("%s doesn't have to be complicated! 💡\n\nWe've broken down the process into three simple steps that anyone can follow:\n\n1️⃣ Analyze your current approach\n2️⃣ Identify opportunities for improvement\n3️⃣ Implement targeted solutions", capitalize(req.Topic)),
		fmt.Sprintf("\"The biggest challenge with %s is knowing where to start.\"\n\nWe hear this from clients all the time. That's why we've created a beginner-friendly guide that walks you through everything you need to know.\n\nFrom fundamental concepts to advanced strategies, we've got you covered.", req.Topic),
	}

	return &transfer.GenerationResult{
		PrimaryContent: content,
		Variants:       variants,
		Topic:          req.Topic,
		Platforms:      req.Platforms,
		Template:       req.Template,
		Tone:           tone,
	}, nil
}

var contentTemplates = map[string]string{
	"general":      "Looking to improve your approach to {topic}? You're not alone!\n\nWe've been researching the most effective strategies in the industry, and we're excited to share what we've learned.\n\nCheck out our latest blog post for a comprehensive guide that will help you navigate the complexities of {topic} with confidence.",
	"announcement": "🎉 BIG ANNOUNCEMENT 🎉\n\nWe are thrilled to unveil our latest innovation in {topic}! After months of development and testing, we're finally ready to share it with the world.\n\nThis game-changing solution will help you:\n• Save valuable time\n• Increase efficiency\n• Achieve better results\n\nStay tuned for the official launch next week!",
	"promotion":    "LIMITED TIME OFFER: Transform your {topic} experience today!\n\nFor a limited time, we're offering an exclusive discount on our premium {topic} solution. Don't miss this opportunity to elevate your results and stand out from the competition.\n\nUse code SPECIAL25 for 25% off!",
	"tips":         "Here are 5 game-changing tips for mastering {topic}:\n\n1. Start with a clear strategy\n2. Focus on measurable results\n3. Leverage available tools\n4. Learn from industry leaders\n5. Consistently review and adapt\n\nWhich tip will you implement first?",
	"question":     "We're curious: What's your biggest challenge when it comes to {topic}?\n\nA) Finding the right tools\nB) Developing an effective strategy\nC) Staying consistent\nD) Measuring results\n\nShare your answer in the comments!",
	"story":        "Our journey with {topic} began three years ago when we noticed a gap in the market.\n\nFaced with the same challenges you're experiencing, we developed a solution that has transformed how our clients approach {topic}.\n\nToday, we're proud to share that success with you. Here's how we can help you write your own success story.",
}

func adjustTone(content, tone string) string {
	switch tone {
	case "casual":
		r := strings.NewReplacer(
			"We are thrilled", "We are super excited",
			"comprehensive guide", "easy-to-follow guide",
			"game-changing", "awesome",
		)
		return r.Replace(content)
	case "humorous":
		r := strings.NewReplacer(
			"You're not alone", "Don't worry, we've all been there!",
			"After months of development", "After countless coffee-fueled nights",
			"Transform your", "Stop pulling your hair out over your",
		)
		return r.Replace(content)
	default:
		return content
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
