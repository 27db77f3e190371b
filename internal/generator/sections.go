package generator

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"seo-forge/internal/models"
)

// Section roles, in the order GenerateSections emits them.
const (
	RoleIntroduction  = "introduction"
	RoleDefinition    = "definition"
	RoleBenefits      = "benefits"
	RoleHowTo         = "how_to"
	RoleBestPractices = "best_practices"
	RoleConclusion    = "conclusion"
)

// GenerateSections produces the ordered article sections: one introduction,
// four fixed topic sections and one conclusion. It assumes the primary
// keyword has already been validated by GenerateArticle.
func (g *Generator) GenerateSections(source models.SourceDocument, config models.GenerationConfig) []models.GeneratedSection {
	keyword := strings.TrimSpace(config.PrimaryKeyword)
	h2 := g.patterns.HeadingPatterns["h2"]

	sections := []models.GeneratedSection{
		{
			Role:    RoleIntroduction,
			Content: g.generateIntroduction(keyword, source.Body, config.ContentType),
		},
		{
			Role:    RoleDefinition,
			Heading: Resolve(h2[0], map[string]string{"keyword": titleCase(keyword)}),
			Content: generateDefinitionSection(keyword, source.Body),
		},
		{
			Role:    RoleBenefits,
			Heading: Resolve(h2[1], map[string]string{"keyword": titleCase(keyword)}),
			Content: generateBenefitsSection(keyword, config.SecondaryKeywords),
		},
		{
			Role:    RoleHowTo,
			Heading: Resolve(h2[2], map[string]string{"keyword": keyword, "action": "implement"}),
			Content: generateHowToSection(keyword, source.Body),
		},
		{
			Role:    RoleBestPractices,
			Heading: Resolve(h2[3], map[string]string{"keyword": titleCase(keyword)}),
			Content: generateBestPracticesSection(keyword, config.SecondaryKeywords),
		},
		{
			Role:    RoleConclusion,
			Heading: "Conclusion",
			Content: generateConclusion(keyword, config.ContentType),
		},
	}

	return sections
}

// generateIntroduction opens with a resolved hook, frames the article around
// the keyword (leaning on leading source sentences when any are substantial),
// and always ends with the fixed invitational closing line.
func (g *Generator) generateIntroduction(keyword, sourceText, contentType string) string {
	tmpl := g.templateFor(contentType)
	hook := Resolve(g.pick(tmpl.IntroHooks), map[string]string{
		"Primary_keyword": titleCase(keyword),
		"main_topic":      keyword,
		"keyword":         keyword,
		"year":            strconv.Itoa(time.Now().Year()),
		"number":          strconv.Itoa(5 + g.intn(11)),
		"adjective":       strings.ToLower(g.pick(poolFor(g.pools.Adjectives, contentType))),
		"action":          strings.ToLower(g.pick(poolFor(g.pools.Actions, contentType))),
	})

	var b strings.Builder
	b.WriteString(hook)
	b.WriteString("\n\n")

	if sourceText != "" {
		if len(leadingSentences(sourceText, 3)) > 0 {
			fmt.Fprintf(&b, "In this comprehensive guide, we'll explore %s and discover how it can transform your approach. ", keyword)
			fmt.Fprintf(&b, "You'll learn practical strategies, expert tips, and actionable insights to master %s.\n\n", keyword)
		}
	} else {
		fmt.Fprintf(&b, "Understanding %s is crucial in today's competitive landscape. ", keyword)
		fmt.Fprintf(&b, "This guide will provide you with everything you need to know about %s, ", keyword)
		b.WriteString("from basic concepts to advanced strategies.\n\n")
	}

	fmt.Fprintf(&b, "Whether you're just getting started or looking to improve your existing %s approach, ", keyword)
	b.WriteString("this article has something valuable for you. Let's dive in!")

	return b.String()
}

func generateDefinitionSection(keyword, sourceText string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s refers to the strategic approach of optimizing and implementing ", titleCase(keyword))
	fmt.Fprintf(&b, "%s to achieve better results and improved performance.\n\n", keyword)

	if sourceText != "" {
		relevant := keywordSentences(sourceText, keyword, 2)
		if len(relevant) > 0 {
			b.WriteString("Key characteristics include:\n\n")
			for _, sentence := range relevant {
				fmt.Fprintf(&b, "- %s.\n", sentence)
			}
		}
	} else {
		fmt.Fprintf(&b, "The core principles of effective %s include strategic planning, ", keyword)
		b.WriteString("consistent implementation, and continuous optimization for best results.\n\n")
	}

	b.WriteString("\nUnderstanding these fundamentals is essential for anyone looking to leverage ")
	fmt.Fprintf(&b, "%s effectively in their strategy.", keyword)

	return b.String()
}

func generateBenefitsSection(keyword string, secondaryKeywords []string) string {
	benefits := []string{
		fmt.Sprintf("Improved efficiency and performance in %s implementation", keyword),
		fmt.Sprintf("Better results through strategic %s optimization", keyword),
		"Increased ROI and measurable outcomes",
		"Enhanced competitive advantage in your market",
	}
	explanations := []string{
		fmt.Sprintf("When you optimize your %s approach, you'll see immediate improvements in efficiency and effectiveness.", keyword),
		fmt.Sprintf("Strategic %s implementation leads to measurable improvements in key performance indicators.", keyword),
		fmt.Sprintf("Proper %s strategies provide clear return on investment through improved outcomes.", keyword),
		fmt.Sprintf("Stay ahead of competitors by leveraging advanced %s techniques and best practices.", keyword),
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Implementing effective %s strategies offers numerous advantages:\n\n", keyword)
	for i := range benefits {
		fmt.Fprintf(&b, "**%d. %s**\n%s\n\n", i+1, benefits[i], explanations[i])
	}

	if len(secondaryKeywords) > 0 {
		fmt.Fprintf(&b, "Additionally, integrating %s with your %s ", joinFirst(secondaryKeywords, 2), keyword)
		b.WriteString("strategy can amplify these benefits and create synergistic effects.")
	}

	return strings.TrimRight(b.String(), "\n")
}

func generateHowToSection(keyword, sourceText string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here's a step-by-step approach to implementing %s effectively:\n\n", keyword)

	fmt.Fprintf(&b, "**Step 1: Plan Your %s Strategy**\n", titleCase(keyword))
	fmt.Fprintf(&b, "Begin by defining clear objectives and identifying key areas where %s can make the biggest impact.\n\n", keyword)
	b.WriteString("**Step 2: Implement Best Practices**\n")
	fmt.Fprintf(&b, "Apply proven %s techniques and methodologies that align with your specific goals and requirements.\n\n", keyword)
	b.WriteString("**Step 3: Monitor and Optimize**\n")
	fmt.Fprintf(&b, "Track performance metrics and continuously refine your %s approach based on data and results.\n\n", keyword)
	b.WriteString("**Step 4: Scale and Expand**\n")
	fmt.Fprintf(&b, "Once you've achieved success with basic %s implementation, expand to more advanced strategies.\n\n", keyword)

	if len(sourceText) > 200 {
		fmt.Fprintf(&b, "\n**Pro Tip:** Based on industry insights, successful %s implementation ", keyword)
		b.WriteString("requires consistent effort and regular optimization to maintain peak performance.")
	}

	return strings.TrimRight(b.String(), "\n")
}

func generateBestPracticesSection(keyword string, secondaryKeywords []string) string {
	practices := []string{
		fmt.Sprintf("Always start with a clear %s strategy and defined goals", keyword),
		fmt.Sprintf("Regularly monitor and analyze %s performance metrics", keyword),
		fmt.Sprintf("Stay updated with the latest %s trends and developments", keyword),
		fmt.Sprintf("Focus on quality over quantity in your %s approach", keyword),
		fmt.Sprintf("Test and iterate different %s methods to find what works best", keyword),
	}
	explanations := []string{
		fmt.Sprintf("Clear objectives ensure your %s efforts are focused and measurable.", keyword),
		fmt.Sprintf("Data-driven insights help you optimize your %s performance continuously.", keyword),
		fmt.Sprintf("Staying current with %s innovations keeps you competitive.", keyword),
		fmt.Sprintf("Quality %s implementation delivers better long-term results.", keyword),
		fmt.Sprintf("Continuous testing helps you discover the most effective %s strategies.", keyword),
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Follow these essential %s best practices for optimal results:\n\n", keyword)
	for i := range practices {
		fmt.Fprintf(&b, "**%d. %s**\n%s\n\n", i+1, titleCase(practices[i]), explanations[i])
	}

	if len(secondaryKeywords) > 0 {
		fmt.Fprintf(&b, "**Remember:** Integrating %s with your %s ", joinFirst(secondaryKeywords, 2), keyword)
		b.WriteString("strategy can significantly enhance overall effectiveness and results.")
	}

	return strings.TrimRight(b.String(), "\n")
}

// generateConclusion closes the article with a fixed summary and a
// content-type-specific call to action chosen by direct lookup.
func generateConclusion(keyword, contentType string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Mastering %s is essential for achieving outstanding results in today's competitive environment. ", keyword)
	b.WriteString("By implementing the strategies and best practices outlined in this guide, you'll be well-equipped to ")
	fmt.Fprintf(&b, "leverage %s effectively and achieve your goals.\n\n", keyword)

	fmt.Fprintf(&b, "Remember, successful %s implementation requires consistency, patience, and continuous learning. ", keyword)
	b.WriteString("Start with the fundamentals, track your progress, and gradually implement more advanced techniques ")
	b.WriteString("as you gain experience.\n\n")

	switch contentType {
	case models.ContentTypeBlogPost:
		fmt.Fprintf(&b, "Ready to take your %s strategy to the next level? Start implementing these techniques today ", keyword)
		b.WriteString("and watch your results improve. Share your experience in the comments below!")
	case models.ContentTypeHowToGuide:
		fmt.Fprintf(&b, "Now you have all the tools needed to succeed with %s. Follow the steps outlined above, ", keyword)
		b.WriteString("stay consistent, and you'll see significant improvements in your results.")
	case models.ContentTypeReview:
		fmt.Fprintf(&b, "Based on our comprehensive analysis, %s offers significant value when implemented correctly. ", keyword)
		b.WriteString("Consider your specific needs and choose the approach that best aligns with your objectives.")
	default:
		fmt.Fprintf(&b, "Take action today and transform your %s approach. The strategies in this guide ", keyword)
		b.WriteString("have helped countless others achieve success - now it's your turn.")
	}

	return b.String()
}

// AssembleBody flattens the ordered sections into one Markdown-like body.
// The introduction carries no heading; every other section contributes
// exactly one ## heading line.
func AssembleBody(sections []models.GeneratedSection) string {
	var b strings.Builder
	for _, section := range sections {
		if section.Heading != "" {
			fmt.Fprintf(&b, "## %s\n\n", section.Heading)
		}
		b.WriteString(section.Content)
		b.WriteString("\n\n")
	}
	return strings.TrimSpace(b.String())
}

// leadingSentences returns up to max non-trivial leading sentences of text,
// where non-trivial means longer than 20 characters after trimming.
func leadingSentences(text string, max int) []string {
	parts := strings.Split(text, ".")
	if len(parts) > max {
		parts = parts[:max]
	}
	var sentences []string
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); len(trimmed) > 20 {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

// keywordSentences returns up to max non-trivial sentences of text that
// mention keyword, case-insensitively.
func keywordSentences(text, keyword string, max int) []string {
	lowered := strings.ToLower(keyword)
	var sentences []string
	for _, part := range strings.Split(text, ".") {
		trimmed := strings.TrimSpace(part)
		if len(trimmed) > 20 && strings.Contains(strings.ToLower(trimmed), lowered) {
			sentences = append(sentences, trimmed)
			if len(sentences) == max {
				break
			}
		}
	}
	return sentences
}

func joinFirst(values []string, max int) string {
	if len(values) > max {
		values = values[:max]
	}
	return strings.Join(values, ", ")
}
