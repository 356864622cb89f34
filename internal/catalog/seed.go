package catalog

// builtinContent is the built-in content library aligned with NCF 2023.
// 25 units across five subjects, grades 1-10, covering every difficulty
// level and content type. Every Library starts with a copy of this table.
var builtinContent = []Content{
	// Mathematics
	{
		ContentID:    "math-001",
		Subject:      "math",
		Topic:        "Counting and Numbers",
		Difficulty:   DifficultyBeginner,
		ContentType:  TypeText,
		Content:      "Numbers from 1 to 100. Learn to count forwards and backwards. Practice skip counting by 2s, 5s, and 10s.",
		NCFAlignment: []string{"NCF-MATH-G1-NUM-1"},
		GradeLevel:   1,
	},
	{
		ContentID:    "math-002",
		Subject:      "math",
		Topic:        "Addition and Subtraction",
		Difficulty:   DifficultyBeginner,
		ContentType:  TypeActivity,
		Content:      "Use counting beads or stones to practise addition and subtraction within 20. Story problems using local contexts.",
		NCFAlignment: []string{"NCF-MATH-G2-OPS-1"},
		GradeLevel:   2,
	},
	{
		ContentID:    "math-003",
		Subject:      "math",
		Topic:        "Multiplication Tables",
		Difficulty:   DifficultyBeginner,
		ContentType:  TypeText,
		Content:      "Multiplication tables from 1 to 10. Visual array models. Repeated addition concept. Practice with rhymes and patterns.",
		NCFAlignment: []string{"NCF-MATH-G3-MUL-1"},
		GradeLevel:   3,
	},
	{
		ContentID:    "math-004",
		Subject:      "math",
		Topic:        "Fractions",
		Difficulty:   DifficultyIntermediate,
		ContentType:  TypeText,
		Content:      "Understanding fractions as parts of a whole. Equivalent fractions. Comparing fractions with same and different denominators. Real-life examples: sharing rotis, dividing land.",
		NCFAlignment: []string{"NCF-MATH-G5-FRA-1"},
		GradeLevel:   5,
	},
	{
		ContentID:    "math-005",
		Subject:      "math",
		Topic:        "Fractions Quiz",
		Difficulty:   DifficultyIntermediate,
		ContentType:  TypeQuiz,
		Content:      `[{"q":"What is 1/2 + 1/4?","options":["1/2","3/4","2/6","1/6"],"answer":"3/4"},{"q":"Which is bigger: 2/3 or 3/4?","options":["2/3","3/4","Equal","Cannot tell"],"answer":"3/4"}]`,
		NCFAlignment: []string{"NCF-MATH-G5-FRA-2"},
		GradeLevel:   5,
	},
	{
		ContentID:    "math-006",
		Subject:      "math",
		Topic:        "Algebra Introduction",
		Difficulty:   DifficultyIntermediate,
		ContentType:  TypeText,
		Content:      "Introduction to variables and simple equations. Solving x + 5 = 12. Writing word problems as equations.",
		NCFAlignment: []string{"NCF-MATH-G7-ALG-1"},
		GradeLevel:   7,
	},
	{
		ContentID:    "math-007",
		Subject:      "math",
		Topic:        "Geometry: Triangles",
		Difficulty:   DifficultyIntermediate,
		ContentType:  TypeActivity,
		Content:      "Properties of triangles. Sum of angles = 180°. Types: equilateral, isosceles, scalene. Measure angles with protractor activity.",
		NCFAlignment: []string{"NCF-MATH-G7-GEO-1"},
		GradeLevel:   7,
	},
	{
		ContentID:    "math-008",
		Subject:      "math",
		Topic:        "Linear Equations",
		Difficulty:   DifficultyAdvanced,
		ContentType:  TypeText,
		Content:      "Solving simultaneous linear equations by substitution and elimination. Real-world applications: mixtures, speed-distance-time.",
		NCFAlignment: []string{"NCF-MATH-G9-ALG-2"},
		GradeLevel:   9,
	},
	{
		ContentID:    "math-009",
		Subject:      "math",
		Topic:        "Quadratic Equations",
		Difficulty:   DifficultyAdvanced,
		ContentType:  TypeText,
		Content:      "Solving ax²+bx+c=0 by factorisation and quadratic formula. Discriminant. Nature of roots.",
		NCFAlignment: []string{"NCF-MATH-G10-ALG-3"},
		GradeLevel:   10,
	},
	{
		ContentID:    "math-010",
		Subject:      "math",
		Topic:        "Statistics: Mean Median Mode",
		Difficulty:   DifficultyIntermediate,
		ContentType:  TypeActivity,
		Content:      "Calculate mean, median, and mode from real data sets (e.g. rainfall, crop yields). Understand when to use each measure.",
		NCFAlignment: []string{"NCF-MATH-G8-STAT-1"},
		GradeLevel:   8,
	},

	// Science
	{
		ContentID:    "sci-001",
		Subject:      "science",
		Topic:        "Plants and Photosynthesis",
		Difficulty:   DifficultyBeginner,
		ContentType:  TypeText,
		Content:      "How plants make food using sunlight, water, and carbon dioxide. Chlorophyll. Leaf structure. Importance of plants in food chain.",
		NCFAlignment: []string{"NCF-SCI-G5-BIO-1"},
		GradeLevel:   5,
	},
	{
		ContentID:    "sci-002",
		Subject:      "science",
		Topic:        "Human Body Systems",
		Difficulty:   DifficultyIntermediate,
		ContentType:  TypeText,
		Content:      "Digestive, circulatory, and respiratory systems. Functions of major organs. Nutrition and health. Hygiene practices.",
		NCFAlignment: []string{"NCF-SCI-G7-BIO-2"},
		GradeLevel:   7,
	},
	{
		ContentID:    "sci-003",
		Subject:      "science",
		Topic:        "Electricity and Circuits",
		Difficulty:   DifficultyIntermediate,
		ContentType:  TypeActivity,
		Content:      "Build a simple circuit with battery, wire, and bulb. Conductors and insulators. Series vs parallel circuits. Safety with electricity.",
		NCFAlignment: []string{"NCF-SCI-G7-PHY-1"},
		GradeLevel:   7,
	},
	{
		ContentID:    "sci-004",
		Subject:      "science",
		Topic:        "Atoms and Molecules",
		Difficulty:   DifficultyAdvanced,
		ContentType:  TypeText,
		Content:      "Structure of atom: protons, neutrons, electrons. Valency. Chemical formulae. Balancing equations. Periodic table introduction.",
		NCFAlignment: []string{"NCF-SCI-G9-CHE-1"},
		GradeLevel:   9,
	},
	{
		ContentID:    "sci-005",
		Subject:      "science",
		Topic:        "Ecosystems",
		Difficulty:   DifficultyIntermediate,
		ContentType:  TypeText,
		Content:      "Food chains and food webs. Producers, consumers, decomposers. Biodiversity. Indian ecosystems: forests, wetlands, grasslands.",
		NCFAlignment: []string{"NCF-SCI-G8-ENV-1"},
		GradeLevel:   8,
	},
	{
		ContentID:    "sci-006",
		Subject:      "science",
		Topic:        "Heredity and Evolution",
		Difficulty:   DifficultyAdvanced,
		ContentType:  TypeText,
		Content:      "Mendel's laws of inheritance. Dominant and recessive traits. DNA basics. Theory of evolution and natural selection.",
		NCFAlignment: []string{"NCF-SCI-G10-BIO-3"},
		GradeLevel:   10,
	},

	// Hindi
	{
		ContentID:    "hindi-001",
		Subject:      "hindi",
		Topic:        "Varnamala (Alphabet)",
		Difficulty:   DifficultyBeginner,
		ContentType:  TypeText,
		Content:      "Hindi alphabet: 11 swaras (vowels) and 35 vyanjanas (consonants). Devanagari script. Matras. Basic words.",
		NCFAlignment: []string{"NCF-HINDI-G1-READ-1"},
		GradeLevel:   1,
	},
	{
		ContentID:    "hindi-002",
		Subject:      "hindi",
		Topic:        "Reading Comprehension",
		Difficulty:   DifficultyIntermediate,
		ContentType:  TypeText,
		Content:      "Short stories and poems from Rimjhim textbook. Understanding main idea, characters, and moral. Answer in complete sentences.",
		NCFAlignment: []string{"NCF-HINDI-G5-READ-2"},
		GradeLevel:   5,
	},
	{
		ContentID:    "hindi-003",
		Subject:      "hindi",
		Topic:        "Essay Writing",
		Difficulty:   DifficultyAdvanced,
		ContentType:  TypeActivity,
		Content:      "Structure of a Hindi essay: Prastavan, Mukhya Bhag, Upasanhar. Practice topics: Mera Gaon, Paryavaran Pradushan, Swastha Jeevan.",
		NCFAlignment: []string{"NCF-HINDI-G8-WRITE-1"},
		GradeLevel:   8,
	},

	// Social Studies / EVS
	{
		ContentID:    "evs-001",
		Subject:      "social_studies",
		Topic:        "Our Neighbourhood",
		Difficulty:   DifficultyBeginner,
		ContentType:  TypeActivity,
		Content:      "Map your school and home. Identify helpers in the community: farmers, teachers, doctors, postmen. Discuss their roles.",
		NCFAlignment: []string{"NCF-EVS-G3-SOC-1"},
		GradeLevel:   3,
	},
	{
		ContentID:    "evs-002",
		Subject:      "social_studies",
		Topic:        "Indian History: Ancient Civilisations",
		Difficulty:   DifficultyIntermediate,
		ContentType:  TypeText,
		Content:      "Indus Valley Civilisation: Harappa and Mohenjo-daro. Vedic period. Maurya Empire. Gupta Golden Age. Key contributions to science, mathematics, and art.",
		NCFAlignment: []string{"NCF-SS-G6-HIST-1"},
		GradeLevel:   6,
	},
	{
		ContentID:    "evs-003",
		Subject:      "social_studies",
		Topic:        "Indian Constitution and Democracy",
		Difficulty:   DifficultyAdvanced,
		ContentType:  TypeText,
		Content:      "Fundamental Rights and Duties. Directive Principles. Structure of government: Legislature, Executive, Judiciary. Preamble and its significance.",
		NCFAlignment: []string{"NCF-SS-G10-CIV-1"},
		GradeLevel:   10,
	},

	// English
	{
		ContentID:    "eng-001",
		Subject:      "english",
		Topic:        "Basic Reading: Phonics",
		Difficulty:   DifficultyBeginner,
		ContentType:  TypeActivity,
		Content:      "Letter sounds and blends. CVC words (cat, bat, mat). Short stories with illustrations. Oral reading practice.",
		NCFAlignment: []string{"NCF-ENG-G1-READ-1"},
		GradeLevel:   1,
	},
	{
		ContentID:    "eng-002",
		Subject:      "english",
		Topic:        "Grammar: Tenses",
		Difficulty:   DifficultyIntermediate,
		ContentType:  TypeText,
		Content:      "Simple present, past, and future tenses. Present and past continuous. Perfect tenses introduction. Common errors in Indian English.",
		NCFAlignment: []string{"NCF-ENG-G6-GRAM-1"},
		GradeLevel:   6,
	},
	{
		ContentID:    "eng-003",
		Subject:      "english",
		Topic:        "Letter Writing",
		Difficulty:   DifficultyIntermediate,
		ContentType:  TypeActivity,
		Content:      "Formal and informal letter formats. Application for leave. Complaint letter. Invitation letter. Practice exercises with real contexts.",
		NCFAlignment: []string{"NCF-ENG-G8-WRITE-1"},
		GradeLevel:   8,
	},
}
