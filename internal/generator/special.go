package generator

import (
	"fmt"
	"strings"

	"github.com/brainrotlabs/brainrot-api/internal/models"
)

type specialModeCorpus struct {
	title     string
	author    models.Author
	templates map[models.ToxicityTier][]string
}

var specialModes = map[models.SpecialMode]specialModeCorpus{
	models.ModeFounderMeltdown: {
		title:  "Founder's Meltdown",
		author: models.Author{Name: "Rahul Founder", Handle: "@RahulFounderAI"},
		templates: map[models.ToxicityTier][]string{
			models.TierLow: {
				"Just spent 3 hours explaining to my mom why my startup isn't a 'scam' and why I'm not 'wasting my IIT degree' 🙃",
				"Day 183 of building in public: Still can't explain what we do to my relatives without them asking 'But how will you make money?'",
				"When your startup's valuation drops and your parents start forwarding you government job notifications again 😭",
				"The moment you realize your 'revolutionary AI' is just a fancy if-else statement and your investors are coming for a demo tomorrow",
				"My co-founder just left to join Google. My parents are happy. My investors are concerned. My mental health is... existing.",
			},
			models.TierMedium: {
				"Just got rejected by YC for the 3rd time. My parents are celebrating. My friends are celebrating. My bank account is crying. But my delusion is stronger than ever! 🚀",
				"When you spend 6 months building 'the next big thing' only to find out someone launched the exact same product yesterday with 10x better UI and 100x more funding",
				"Your startup is failing, your investors are ghosting you, your co-founder is updating their LinkedIn, and your parents are forwarding you UPSC forms. Peak founder life!",
				"Day 1 of 'funding winter': Investors be like 'We're still deploying capital' but also 'We're being very selective' and also 'We're not doing pre-seed anymore'",
				"When your 'revolutionary AI startup' is actually just a wrapper around GPT-4 and your investors find out you're not actually training any models",
			},
			models.TierHigh: {
				"Just got rejected by 47 VCs in one week. My parents are throwing a party. My friends are sending me job links. My bank account is in the negative. But my delusion is stronger than ever! TO THE MOON! 🚀",
				"Your startup is burning cash faster than your investors can wire money, your co-founder is updating their LinkedIn, your team is sending out resumes, and your parents are forwarding you UPSC forms. But sure, let's call it a 'pivot'!",
				"When you realize your 'revolutionary AI startup' is actually just a wrapper around GPT-4, your investors are coming for a demo tomorrow, and you haven't slept in 72 hours because you're trying to make it look like you're training models",
				"Day 1 of 'funding winter': Investors be like 'We're still deploying capital' but also 'We're being very selective' and also 'We're not doing pre-seed anymore' and also 'Have you considered bootstrapping?'",
				"Your startup is failing, your investors are ghosting you, your co-founder is updating their LinkedIn, your team is sending out resumes, your parents are forwarding you UPSC forms, and your bank account is in the negative. But sure, let's call it a 'learning experience'!",
			},
		},
	},
	models.ModeFakeVCTakes: {
		title:  "Fake VC Takes",
		author: models.Author{Name: "Vikram Ventures", Handle: "@TheVikramVC"},
		templates: map[models.ToxicityTier][]string{
			models.TierLow: {
				"Hot take: If your startup isn't 'AI-first', you're basically building a calculator in 2024",
				"The best founders are the ones who can explain their business model in 3 different ways, none of which make sense",
				"If you're not raising at a 100x ARR multiple, are you even trying?",
				"Real talk: Your startup isn't failing because of the market. It's failing because you're not using enough buzzwords in your pitch deck",
				"The secret to raising a Series A: Just add 'AI' to your company name and watch the term sheets roll in",
			},
			models.TierMedium: {
				"If your startup isn't burning $1M/month, you're not thinking big enough. Real founders know that profitability is just a state of mind",
				"The best founders are the ones who can explain their business model in 3 different ways, none of which make sense, and still get a $10M seed round",
				"Hot take: If you're not raising at a 100x ARR multiple, you're basically building a calculator in 2024. Real VCs know that valuation is just a number",
				"Your startup isn't failing because of the market. It's failing because you're not using enough buzzwords in your pitch deck. Add 'AI', 'Web3', and 'quantum' to your next deck",
				"The secret to raising a Series A: Just add 'AI' to your company name, put 'ex-Google' in your bio, and watch the term sheets roll in",
			},
			models.TierHigh: {
				"If your startup isn't burning $1M/month, you're not thinking big enough. Real founders know that profitability is just a state of mind. Your investors don't care about your burn rate, they care about your story",
				"The best founders are the ones who can explain their business model in 3 different ways, none of which make sense, and still get a $10M seed round. If you can't do that, you're not ready for the big leagues",
				"Hot take: If you're not raising at a 100x ARR multiple, you're basically building a calculator in 2024. Real VCs know that valuation is just a number, and that number should be at least 100x your current revenue",
				"Your startup isn't failing because of the market. It's failing because you're not using enough buzzwords in your pitch deck. Add 'AI', 'Web3', 'quantum', and 'blockchain' to your next deck, and watch the term sheets roll in",
				"The secret to raising a Series A: Just add 'AI' to your company name, put 'ex-Google' in your bio, and watch the term sheets roll in. If that doesn't work, try adding 'ex-Stanford' and 'ex-McKinsey' to your team's bios",
			},
		},
	},
	models.ModeIITBaitThread: {
		title:  "IIT Bait Thread",
		author: models.Author{Name: "Karan Mehra", Handle: "@KaranMehraIIT"},
		templates: map[models.ToxicityTier][]string{
			models.TierLow: {
				"Hot take: IITs are overrated. Here's why:",
				"The truth about IIT placements that no one talks about:",
				"Why I left my IIT degree to start a startup:",
				"IIT vs Tier-2 colleges: The real difference no one tells you",
				"The dark side of IIT culture that needs to change:",
			},
			models.TierMedium: {
				"IITs are just glorified coaching centers. Here's why:",
				"The truth about IIT placements that no one talks about: 80% of you will end up in TCS",
				"Why I left my IIT degree to start a startup: Because I realized IIT is just a brand name",
				"IIT vs Tier-2 colleges: The real difference is just the brand name and the placement cell",
				"The dark side of IIT culture: Toxic competition, unnecessary pressure, and zero real-world skills",
			},
			models.TierHigh: {
				"IITs are just glorified coaching centers. Here's why: 1. You study the same stuff for 4 years 2. You learn nothing practical 3. You get a brand name 4. You end up in TCS anyway",
				"The truth about IIT placements that no one talks about: 80% of you will end up in TCS, 15% will go to startups that will fail, and 5% will actually do something meaningful",
				"Why I left my IIT degree to start a startup: Because I realized IIT is just a brand name, and that brand name doesn't help you build a successful business",
				"IIT vs Tier-2 colleges: The real difference is just the brand name and the placement cell. The education is the same, the students are the same, and the outcomes are the same",
				"The dark side of IIT culture: Toxic competition, unnecessary pressure, zero real-world skills, and a false sense of superiority that will get you nowhere in life",
			},
		},
	},
}

// GenerateSpecial renders one of the named mode corpora. The IIT bait mode
// produces a 3-5 tweet thread joined by blank lines; the others a single post.
func (e *Engine) GenerateSpecial(mode models.SpecialMode, toxicityLevel int) (string, models.Author, error) {
	corpus, ok := specialModes[mode]
	if !ok {
		return "", models.Author{}, fmt.Errorf("unknown special mode %q", mode)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	tier := models.TierFromScalar(toxicityLevel)
	templates := corpus.templates[tier]
	post := templates[e.rng.Intn(len(templates))]

	if mode == models.ModeIITBaitThread {
		length := e.rng.Intn(3) + 3
		thread := []string{post}
		for i := 1; i < length; i++ {
			thread = append(thread, templates[e.rng.Intn(len(templates))])
		}
		post = strings.Join(thread, "\n\n")
	}

	return post, corpus.author, nil
}

// SpecialModeTitle returns the display name for a mode, or empty when unknown.
func SpecialModeTitle(mode models.SpecialMode) string {
	return specialModes[mode].title
}
