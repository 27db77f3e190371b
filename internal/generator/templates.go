package generator

import (
	"log"

	"seo-forge/internal/models"
)

// ContentTemplate holds the static generation material for one content type:
// the ordered section roles and the hook sentences a new article can open with.
type ContentTemplate struct {
	Structure  []string
	IntroHooks []string
}

// SEOPatterns holds the placeholder-bearing patterns shared by all content
// types: title patterns, per-level heading patterns and meta descriptions.
type SEOPatterns struct {
	TitlePatterns   []string
	HeadingPatterns map[string][]string
	MetaPatterns    []string
}

// WordPools are the fixed word-choice lists the resolver draws from. The
// per-content-type maps fall back to the blog_post entry for unknown types.
type WordPools struct {
	Adjectives map[string][]string
	Actions    map[string][]string
	Benefits   map[string][]string
	Timeframes []string
	CTAs       []string
}

// loadContentTemplates returns the per-content-type template library.
// Static data, loaded once at construction, never mutated.
func loadContentTemplates() map[string]ContentTemplate {
	return map[string]ContentTemplate{
		models.ContentTypeBlogPost: {
			Structure: []string{
				"introduction",
				"main_content_sections",
				"conclusion",
				"call_to_action",
			},
			IntroHooks: []string{
				"Did you know that {statistic}?",
				"Have you ever wondered {question}?",
				"In today's {context}, {main_topic} has become more important than ever.",
				"{Primary_keyword} is transforming the way we {action}.",
				"The ultimate guide to {main_topic} starts here.",
			},
		},
		models.ContentTypeReview: {
			Structure: []string{
				"product_overview",
				"key_features",
				"pros_and_cons",
				"comparison",
				"final_verdict",
			},
			IntroHooks: []string{
				"Looking for an honest {product_type} review?",
				"After {time_period} of testing {product_name}, here's what we found.",
				"Is {product_name} worth your money? Let's find out.",
				"{Product_name} promises {benefit} - but does it deliver?",
			},
		},
		models.ContentTypeHowToGuide: {
			Structure: []string{
				"overview",
				"requirements",
				"step_by_step",
				"tips_and_tricks",
				"conclusion",
			},
			IntroHooks: []string{
				"Learning {skill} doesn't have to be complicated.",
				"Master {main_topic} with this comprehensive guide.",
				"Follow these {number} simple steps to {achieve_goal}.",
				"Ready to {action}? Here's everything you need to know.",
			},
		},
		models.ContentTypeLandingPage: {
			Structure: []string{
				"headline",
				"problem_solution",
				"benefits",
				"social_proof",
				"call_to_action",
			},
			IntroHooks: []string{
				"Transform your {area} with {solution}.",
				"Stop struggling with {problem} - there's a better way.",
				"Join {number}+ people who have {achieved_result}.",
				"The {adjective} solution to {problem} is finally here.",
			},
		},
	}
}

// loadSEOPatterns returns the fixed SEO optimization patterns.
func loadSEOPatterns() SEOPatterns {
	return SEOPatterns{
		TitlePatterns: []string{
			"{number} {adjective} Ways to {action} {keyword}",
			"The Ultimate Guide to {keyword} in {year}",
			"How to {action} {keyword}: {benefit}",
			"{keyword}: Everything You Need to Know",
			"{adjective} {keyword} Tips for {target_audience}",
			"Why {keyword} is {adjective} for {context}",
			"{keyword} vs {alternative}: Which is Better?",
		},
		HeadingPatterns: map[string][]string{
			"h2": {
				"What is {keyword}?",
				"Benefits of {keyword}",
				"How to {action} {keyword}",
				"{keyword} Best Practices",
				"Common {keyword} Mistakes to Avoid",
				"{keyword} Tips and Tricks",
				"The Future of {keyword}",
			},
			"h3": {
				"{specific_aspect} of {keyword}",
				"Step {number}: {action}",
				"{keyword} for {specific_use_case}",
				"Advanced {keyword} Techniques",
			},
		},
		MetaPatterns: []string{
			"Learn {keyword} with our comprehensive guide. {benefit} in {timeframe}. {call_to_action}.",
			"Discover {adjective} {keyword} strategies that {result}. Expert tips and {benefit}.",
			"{keyword} made simple. {benefit} with proven methods. {call_to_action}.",
			"Master {keyword} with this {adjective} guide. {benefit} and {additional_benefit}.",
		},
	}
}

// loadWordPools returns the fixed word-choice pools keyed by content type.
func loadWordPools() WordPools {
	return WordPools{
		Adjectives: map[string][]string{
			models.ContentTypeBlogPost:    {"Essential", "Proven", "Expert", "Complete", "Advanced"},
			models.ContentTypeReview:      {"Honest", "Detailed", "Comprehensive", "In-Depth", "Unbiased"},
			models.ContentTypeHowToGuide:  {"Step-by-Step", "Complete", "Beginner's", "Ultimate", "Simple"},
			models.ContentTypeLandingPage: {"Revolutionary", "Game-Changing", "Powerful", "Innovative", "Premium"},
		},
		Actions: map[string][]string{
			models.ContentTypeBlogPost:    {"Master", "Improve", "Optimize", "Boost", "Transform"},
			models.ContentTypeReview:      {"Choose", "Compare", "Evaluate", "Select", "Find"},
			models.ContentTypeHowToGuide:  {"Learn", "Master", "Create", "Build", "Achieve"},
			models.ContentTypeLandingPage: {"Transform", "Revolutionize", "Supercharge", "Optimize", "Enhance"},
		},
		Benefits: map[string][]string{
			models.ContentTypeBlogPost:    {"increase engagement", "boost performance", "improve results"},
			models.ContentTypeReview:      {"make informed decisions", "save time and money", "choose the best option"},
			models.ContentTypeHowToGuide:  {"get started quickly", "avoid common mistakes", "achieve better results"},
			models.ContentTypeLandingPage: {"transform your business", "increase conversions", "boost ROI"},
		},
		Timeframes: []string{"minutes", "today", "this week", "quickly"},
		CTAs:       []string{"Get started now", "Learn more", "Try it today", "Download free guide"},
	}
}

// templateFor looks up the template set for a content type. Unknown types map
// to the blog_post set so generation never fails on an unrecognized type.
func (g *Generator) templateFor(contentType string) ContentTemplate {
	if tmpl, ok := g.templates[contentType]; ok {
		return tmpl
	}
	log.Printf("Unknown content type %q, falling back to blog_post templates", contentType)
	return g.templates[models.ContentTypeBlogPost]
}

// poolFor resolves a per-content-type word pool with the blog_post fallback.
func poolFor(pools map[string][]string, contentType string) []string {
	if pool, ok := pools[contentType]; ok {
		return pool
	}
	return pools[models.ContentTypeBlogPost]
}
