package vocab

// BuiltinWords is the starter deck shown when nothing else is loaded.
func BuiltinWords() []Word {
	return []Word{
		{Word: "Ephemeral", Translation: "Эфемерный", Definition: "Длящийся очень короткое время", Difficulty: Hard},
		{Word: "Ubiquitous", Translation: "Повсеместный", Definition: "Присутствующий везде", Difficulty: Medium},
		{Word: "Serendipity", Translation: "Интуиция", Definition: "Нахождение чего-то хорошего случайно", Difficulty: Easy},
		{Word: "Pragmatic", Translation: "Прагматичный", Definition: "Практичный подход к делам", Difficulty: Medium},
	}
}

// BuiltinStats are the dashboard figures for the starter deck.
func BuiltinStats() Stats {
	return Stats{WordsKnown: 1248, DueToday: 42, Streak: 18, TotalWords: 1650}
}

// DefaultDetail is the record the detail screen shows when given none.
func DefaultDetail() DetailInput {
	return DetailInput{
		Word:         "Serendipity",
		Translation:  "Счастливая случайность",
		Definition:   "Способность делать приятные и неожиданные открытия случайно",
		Difficulty:   Medium,
		Phonetic:     "/ˌser.ənˈdɪp.ə.ti/",
		PartOfSpeech: "noun",
		Examples: []string{
			"It was pure serendipity that led me to find this amazing restaurant.",
			"The discovery of penicillin was a famous example of serendipity in science.",
			"Their meeting was a beautiful serendipity that changed both their lives.",
		},
		Synonyms:       []string{"chance", "fortune", "luck", "coincidence"},
		Antonyms:       []string{"misfortune", "bad luck", "design", "intention"},
		Etymology:      `From Persian fairy tale "The Three Princes of Serendip"`,
		Frequency:      85,
		LastReviewed:   "2 days ago",
		NextReview:     "Tomorrow",
		CorrectAnswers: 8,
		TotalAttempts:  10,
	}
}
