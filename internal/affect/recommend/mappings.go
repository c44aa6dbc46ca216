package recommend

import "mindscore-backend/internal/affect"

var responsesByEmotion = map[string]emotionResponses{
	affect.EmotionJoy: {
		acknowledgments: []string{
			"I'm glad to see you're in such a positive mood! 😊",
			"Your enthusiasm is wonderful! ✨",
			"Love seeing your positive energy! 🌟",
		},
		learningTips: []string{
			"This is a great time to tackle challenging topics!",
			"Your positive mindset will help you learn faster.",
			"Channel this energy into creative problem-solving!",
		},
		activities: []string{
			"Try learning something new and exciting",
			"Work on a project you're passionate about",
			"Share your knowledge with others",
		},
	},
	affect.EmotionSadness: {
		acknowledgments: []string{
			"I notice you might be feeling down. That's okay. 💙",
			"It's alright to feel sad sometimes. I'm here for you.",
			"Your feelings are valid. Take your time. 🫂",
		},
		learningTips: []string{
			"Start with something simple and rewarding today.",
			"Small progress is still progress. Be gentle with yourself.",
			"Focus on topics that usually bring you comfort.",
		},
		activities: []string{
			"Take a break and do something you enjoy",
			"Connect with a friend or loved one",
			"Practice self-compassion exercises",
		},
	},
	affect.EmotionAnger: {
		acknowledgments: []string{
			"I sense some frustration. Let's work through this together.",
			"It's okay to feel angry. Let's channel it productively.",
			"Your feelings matter. Let's find a constructive outlet.",
		},
		learningTips: []string{
			"Take a short break before continuing your studies.",
			"Physical activity might help clear your mind first.",
			"Break down complex problems into manageable steps.",
		},
		activities: []string{
			"Try a quick breathing exercise (4-7-8 technique)",
			"Go for a brief walk or do some stretches",
			"Write down what's bothering you to process it",
		},
	},
	affect.EmotionFear: {
		acknowledgments: []string{
			"I understand you might be feeling anxious or worried.",
			"Fear is natural. Let's take this step by step. 🤝",
			"You're not alone in feeling this way.",
		},
		learningTips: []string{
			"Start with familiar topics to build confidence.",
			"Break your goals into very small, achievable steps.",
			"Remember past challenges you've successfully overcome.",
		},
		activities: []string{
			"Practice grounding techniques (5-4-3-2-1 method)",
			"List three things you've accomplished recently",
			"Reach out to your support network",
		},
	},
	affect.EmotionSurprise: {
		acknowledgments: []string{
			"Something unexpected? I'm here to help! ⚡",
			"Surprises can be great learning opportunities!",
			"Embrace the unexpected! 🎉",
		},
		learningTips: []string{
			"This is perfect for exploring new perspectives!",
			"Use your curiosity to dive deeper into topics.",
			"Unexpected moments often lead to breakthroughs.",
		},
		activities: []string{
			"Explore a related topic you haven't considered",
			"Ask 'why' and 'what if' questions",
			"Document your discoveries",
		},
	},
	affect.EmotionLove: {
		acknowledgments: []string{
			"Your warmth and positivity shine through! ❤️",
			"That's beautiful! Love is a powerful motivator.",
			"Your caring nature is wonderful! 💖",
		},
		learningTips: []string{
			"Your passion will fuel deep understanding.",
			"Connect your learning to what you care about.",
			"Share your enthusiasm with others!",
		},
		activities: []string{
			"Mentor someone or share your knowledge",
			"Create something meaningful",
			"Express gratitude for your learning journey",
		},
	},
	affect.EmotionNeutral: {
		acknowledgments: []string{
			"You seem calm and centered. Good place to start! 👍",
			"A neutral state is perfect for focused learning.",
			"Great mindset for tackling tasks!",
		},
		learningTips: []string{
			"This is ideal for complex problem-solving.",
			"Your focus will serve you well today.",
			"Maintain this balanced approach.",
		},
		activities: []string{
			"Dive into your most important tasks",
			"Practice deep work techniques",
			"Set clear, achievable goals",
		},
	},
	affect.EmotionDisgust: {
		acknowledgments: []string{
			"Something doesn't feel right? Let's address it.",
			"I understand that reaction. Let's reframe this.",
			"Your instincts are telling you something.",
		},
		learningTips: []string{
			"Sometimes resistance reveals important insights.",
			"Try approaching the topic from a different angle.",
			"Focus on why this matters in the bigger picture.",
		},
		activities: []string{
			"Take a brief pause to reset",
			"Find a more engaging resource on the topic",
			"Connect the material to your interests",
		},
	},
}

var (
	lowStressStrategies = []string{
		"🎯 Set ambitious learning goals for today",
		"📚 Tackle that challenging concept you've been avoiding",
		"🧠 Practice active recall and spaced repetition",
		"🤝 Teach someone else what you're learning",
		"🔬 Experiment with advanced applications",
	}
	moderateStressStrategies = []string{
		"📝 Break your study session into 25-minute intervals (Pomodoro)",
		"🎵 Add background music or white noise if helpful",
		"✅ Focus on one topic at a time",
		"🔄 Review what you already know before new material",
		"💡 Use visual aids and diagrams to simplify concepts",
	}
	highStressStrategies = []string{
		"⏸️ Take a 10-minute break before continuing",
		"🌱 Start with the easiest task to build momentum",
		"📋 Make a simple checklist to reduce overwhelm",
		"🧘 Try a 2-minute mindfulness exercise",
		"👥 Consider studying with a supportive peer",
	}
	optimalFlowStrategies = []string{
		"🌊 You're in the flow state - keep going!",
		"⚡ Channel this energy into your most important work",
		"🎨 This is perfect for creative problem-solving",
		"🚀 Push your boundaries while you're in this zone",
		"📈 Build on this momentum for maximum progress",
	}
	coolDownStrategies = []string{
		"🚶 Walk for five minutes before opening your notes",
		"🌬️ Do three rounds of 4-7-8 breathing",
		"✍️ Write the frustration down, then set it aside",
		"🧩 Pick one small, concrete problem to finish",
		"⏱️ Use a short 10-minute timer and stop when it rings",
	}
	confidenceStrategies = []string{
		"🔁 Review a topic you already know well",
		"🪜 Split the next task into three tiny steps",
		"🏅 Write down one recent win before starting",
		"🤝 Ask a peer to quiz you on familiar material",
		"📓 Keep a running list of what you've understood",
	}
)

// comboRules is the curated (emotion, stress) table. It is consulted first.
var comboRules = map[comboKey]rule{
	{affect.EmotionJoy, affect.StressLow}: {
		name: "joy/low",
		studyPlan: StudyPlan{
			Duration:       "45-60 minutes",
			Approach:       "Intensive deep work",
			Breaks:         "Every 45 minutes",
			Recommendation: "Perfect time for challenging material!",
		},
		strategies: optimalFlowStrategies,
	},
	{affect.EmotionSadness, affect.StressHigh}: {
		name: "sadness/high",
		studyPlan: StudyPlan{
			Duration:       "15-20 minutes",
			Approach:       "Gentle review of familiar topics",
			Breaks:         "Frequent, every 15 minutes",
			Recommendation: "Be kind to yourself. Small steps count.",
		},
		strategies: highStressStrategies,
	},
	{affect.EmotionAnger, affect.StressHigh}: {
		name: "anger/high",
		studyPlan: StudyPlan{
			Duration:       "10 minutes after calming",
			Approach:       "Physical activity first, then study",
			Breaks:         "Take breaks when needed",
			Recommendation: "Reset your mind before diving in.",
		},
		strategies: coolDownStrategies,
	},
	{affect.EmotionFear, affect.StressModerate}: {
		name: "fear/moderate",
		studyPlan: StudyPlan{
			Duration:       "25-30 minutes",
			Approach:       "Start with confidence-building review",
			Breaks:         "Every 25 minutes",
			Recommendation: "Build momentum with what you know.",
		},
		strategies: confidenceStrategies,
	},
}

// stressRules is the fallback table. It has an entry for every stress level.
var stressRules = map[affect.StressLevel]rule{
	affect.StressLow: {
		name: "stress/low",
		studyPlan: StudyPlan{
			Duration:       "40-50 minutes",
			Approach:       "Stretch goals with active recall",
			Breaks:         "Every 40 minutes",
			Recommendation: "You have room to take on something harder.",
		},
		strategies: lowStressStrategies,
	},
	affect.StressModerate: {
		name: "stress/moderate",
		studyPlan: StudyPlan{
			Duration:       "30-40 minutes",
			Approach:       "Balanced focus with regular breaks",
			Breaks:         "Every 30 minutes",
			Recommendation: "Maintain a steady, sustainable pace.",
		},
		strategies: moderateStressStrategies,
	},
	affect.StressHigh: {
		name: "stress/high",
		studyPlan: StudyPlan{
			Duration:       "20-25 minutes",
			Approach:       "Light review in short sessions",
			Breaks:         "Every 20 minutes",
			Recommendation: "Go easy on yourself. Consistency beats intensity.",
		},
		strategies: highStressStrategies,
	},
	affect.StressOptimal: {
		name: "stress/optimal",
		studyPlan: StudyPlan{
			Duration:       "60-90 minutes",
			Approach:       "Sustained deep work",
			Breaks:         "Every 50 minutes",
			Recommendation: "Ride the momentum while it lasts.",
		},
		strategies: optimalFlowStrategies,
	},
}

var motivationalQuotes = []string{
	"Every expert was once a beginner. Keep going! 💪",
	"Progress, not perfection. You're doing great! 🌟",
	"Your brain is like a muscle - the more you use it, the stronger it gets! 🧠",
	"Mistakes are proof that you're trying. Keep learning! 📚",
	"The only way to do great work is to love what you do. 💙",
	"Small daily improvements lead to stunning results. ✨",
	"You are capable of amazing things! 🌈",
	"Learning is a journey, not a destination. Enjoy the process! 🛤️",
	"Believe in yourself. You've overcome challenges before! 💫",
	"Your potential is limitless. Keep pushing forward! 🚀",
}

var wellnessByCategory = map[affect.Category][]string{
	affect.CategoryCritical: {
		"🆘 Consider taking a longer break (15-30 minutes)",
		"💬 Reach out to someone you trust",
		"🏥 If feelings persist, consider professional support",
		"🎯 Focus only on essential tasks today",
	},
	affect.CategoryLow: {
		"🧘 Practice mindfulness or meditation",
		"💪 Light exercise can boost your mood",
		"📱 Limit screen time outside of necessary tasks",
		"😴 Ensure you're getting adequate sleep",
	},
	affect.CategoryModerate: {
		"🚰 Stay hydrated and keep snacks nearby",
		"🗓️ Plan one focused block and protect it",
		"🚶 Take a short walk between sessions",
		"📝 Note what is working so you can repeat it",
	},
	affect.CategoryGood: {
		"🌟 Great mental state! Use it wisely",
		"🎯 This is ideal for tackling big goals",
		"🤝 Help others who might be struggling",
		"📚 Invest in long-term learning projects",
	},
}

var wellnessByEmotion = map[string][]string{
	affect.EmotionSadness: {"🌞 Get some sunlight or bright light exposure", "🎶 Listen to uplifting music"},
	affect.EmotionAnger:   {"🥊 Try physical exercise to release tension", "📝 Journal your thoughts"},
	affect.EmotionFear:    {"🫂 Practice grounding techniques", "📖 Read something comforting"},
	affect.EmotionJoy:     {"📸 Capture this positive moment", "💝 Spread positivity to others"},
}

const (
	learningModeIntensive = "🚀 Intensive Mode: Tackle complex problems and new concepts"
	learningModeGentle    = "🌱 Gentle Mode: Review familiar material and consolidate knowledge"
	learningModeBalanced  = "⚖️ Balanced Mode: Mix of review and new learning with breaks"
	learningModeStandard  = "📚 Standard Mode: Regular study pace with periodic breaks"
)

var (
	highEnergyEmotions = map[string]bool{affect.EmotionJoy: true, affect.EmotionSurprise: true, affect.EmotionLove: true}
	lowEnergyEmotions  = map[string]bool{affect.EmotionSadness: true, affect.EmotionFear: true}
)
