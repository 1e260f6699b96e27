package archetype

// Profile is the static narrative content for one archetype in one language.
type Profile struct {
	Name              string   `json:"name"`
	Color             string   `json:"color"`
	BgColor           string   `json:"bg_color"`
	Summary           string   `json:"summary"`
	Strengths         []string `json:"strengths"`
	Blindspots        []string `json:"blindspots"`
	UnderStress       []string `json:"under_stress"`
	CommunicationTips []string `json:"communication_tips"`
}

type profileData struct {
	color   string
	bgColor string
	id      Profile
	en      Profile
}

// ProfileFor returns the localized profile for an archetype. The backing
// table is package-level static data; callers receive copies.
func (a Archetype) ProfileFor(lang Language) Profile {
	d := profiles[a]
	var p Profile
	if lang == LangEN {
		p = d.en
	} else {
		p = d.id
	}
	p.Color = d.color
	p.BgColor = d.bgColor
	return p
}

// LocalName is a shortcut for the display name alone.
func (a Archetype) LocalName(lang Language) string {
	return a.ProfileFor(lang).Name
}

// Color returns the archetype's brand color, shared by both languages.
func (a Archetype) Color() string {
	return profiles[a].color
}

var profiles = map[Archetype]profileData{
	Driver: {
		color:   "#C05640",
		bgColor: "#FDF3F1",
		id: Profile{
			Name:    "Penggerak",
			Summary: "Anda adalah sosok yang tegas dan berorientasi pada hasil. Anda memiliki kemampuan alami untuk mengambil keputusan cepat dan memimpin orang lain menuju tujuan. Ketegasan Anda membantu tim bergerak maju, namun penting untuk tetap mendengarkan perspektif orang lain.",
			Strengths: []string{
				"Tegas dalam mengambil keputusan",
				"Fokus pada hasil",
				"Memotivasi orang lain",
				"Efisien dalam bekerja",
				"Berani menghadapi tantangan",
			},
			Blindspots: []string{
				"Cenderung mendominasi percakapan",
				"Kurang sabar dengan proses",
				"Bisa terkesan tidak sensitif",
				"Sulit mendelegasikan",
				"Mengabaikan detail kecil",
			},
			UnderStress: []string{
				"Menjadi lebih mengontrol",
				"Lebih cepat marah",
				"Mengambil alih tanpa konsultasi",
			},
			CommunicationTips: []string{
				"Langsung ke inti masalah",
				"Berikan fakta dan data",
				"Hormati waktu mereka",
				"Tawarkan solusi, bukan masalah",
				"Biarkan mereka memimpin jika memungkinkan",
			},
		},
		en: Profile{
			Name:    "Driver",
			Summary: "You are a decisive and results-oriented individual. You have a natural ability to make quick decisions and lead others toward goals. Your assertiveness helps teams move forward, but it's important to still listen to others' perspectives.",
			Strengths: []string{
				"Decisive in making decisions",
				"Results-focused",
				"Motivates others",
				"Efficient in work",
				"Brave in facing challenges",
			},
			Blindspots: []string{
				"Tends to dominate conversations",
				"Less patient with processes",
				"Can seem insensitive",
				"Difficulty delegating",
				"Overlooks small details",
			},
			UnderStress: []string{
				"Becomes more controlling",
				"Gets angry faster",
				"Takes over without consulting",
			},
			CommunicationTips: []string{
				"Get straight to the point",
				"Provide facts and data",
				"Respect their time",
				"Offer solutions, not problems",
				"Let them lead when possible",
			},
		},
	},
	Spark: {
		color:   "#D99E30",
		bgColor: "#FFF9EB",
		id: Profile{
			Name:    "Percikan",
			Summary: "Anda adalah energi positif dalam setiap interaksi. Kemampuan Anda untuk terhubung dengan orang lain dan menciptakan suasana yang menyenangkan membuat Anda menjadi pusat perhatian alami. Kreativitas dan antusiasme Anda menginspirasi orang di sekitar Anda.",
			Strengths: []string{
				"Komunikator yang baik",
				"Kreatif dan inovatif",
				"Membangun hubungan dengan mudah",
				"Antusias dan optimis",
				"Fleksibel dengan perubahan",
			},
			Blindspots: []string{
				"Kurang fokus pada detail",
				"Bisa terlalu impulsif",
				"Kesulitan menyelesaikan tugas",
				"Terlalu banyak bicara",
				"Menghindari konflik",
			},
			UnderStress: []string{
				"Menjadi lebih dramatis",
				"Mencari perhatian berlebihan",
				"Sulit berkonsentrasi",
			},
			CommunicationTips: []string{
				"Buat suasana yang hangat",
				"Dengarkan cerita mereka",
				"Berikan apresiasi",
				"Libatkan dalam brainstorming",
				"Jangan terlalu kaku",
			},
		},
		en: Profile{
			Name:    "Spark",
			Summary: "You are positive energy in every interaction. Your ability to connect with others and create a pleasant atmosphere makes you a natural center of attention. Your creativity and enthusiasm inspire those around you.",
			Strengths: []string{
				"Good communicator",
				"Creative and innovative",
				"Builds relationships easily",
				"Enthusiastic and optimistic",
				"Flexible with change",
			},
			Blindspots: []string{
				"Lacks focus on details",
				"Can be too impulsive",
				"Difficulty completing tasks",
				"Talks too much",
				"Avoids conflict",
			},
			UnderStress: []string{
				"Becomes more dramatic",
				"Seeks excessive attention",
				"Has difficulty concentrating",
			},
			CommunicationTips: []string{
				"Create a warm atmosphere",
				"Listen to their stories",
				"Give appreciation",
				"Involve in brainstorming",
				"Don't be too rigid",
			},
		},
	},
	Anchor: {
		color:   "#5D8A66",
		bgColor: "#F1F7F3",
		id: Profile{
			Name:    "Jangkar",
			Summary: "Anda adalah pilar ketenangan dan stabilitas. Dalam situasi yang kacau, Anda menjadi tempat berlindung yang dapat diandalkan. Kesabaran dan kesetiaan Anda membuat hubungan Anda bertahan lama dan bermakna.",
			Strengths: []string{
				"Sabar dan tenang",
				"Pendengar yang baik",
				"Dapat diandalkan",
				"Setia dan konsisten",
				"Menciptakan harmoni",
			},
			Blindspots: []string{
				"Sulit mengatakan tidak",
				"Menghindari perubahan",
				"Memendam perasaan",
				"Lambat dalam mengambil keputusan",
				"Terlalu mengalah",
			},
			UnderStress: []string{
				"Menarik diri",
				"Menjadi pasif-agresif",
				"Menolak berbicara tentang masalah",
			},
			CommunicationTips: []string{
				"Berikan waktu untuk berpikir",
				"Jangan menekan untuk keputusan cepat",
				"Tunjukkan apresiasi",
				"Buat lingkungan yang aman",
				"Konsisten dalam perilaku",
			},
		},
		en: Profile{
			Name:    "Anchor",
			Summary: "You are a pillar of calm and stability. In chaotic situations, you become a reliable haven. Your patience and loyalty make your relationships lasting and meaningful.",
			Strengths: []string{
				"Patient and calm",
				"Good listener",
				"Dependable",
				"Loyal and consistent",
				"Creates harmony",
			},
			Blindspots: []string{
				"Difficulty saying no",
				"Avoids change",
				"Holds feelings inside",
				"Slow in making decisions",
				"Too yielding",
			},
			UnderStress: []string{
				"Withdraws",
				"Becomes passive-aggressive",
				"Refuses to talk about problems",
			},
			CommunicationTips: []string{
				"Give time to think",
				"Don't pressure for quick decisions",
				"Show appreciation",
				"Create a safe environment",
				"Be consistent in behavior",
			},
		},
	},
	Analyst: {
		color:   "#5B8FA8",
		bgColor: "#F0F7FA",
		id: Profile{
			Name:    "Analis",
			Summary: "Anda adalah pemikir yang sistematis dan teliti. Kemampuan Anda untuk menganalisis situasi secara mendalam membantu mengambil keputusan yang tepat. Standar tinggi Anda memastikan kualitas dalam setiap pekerjaan.",
			Strengths: []string{
				"Analitis dan teliti",
				"Standar kualitas tinggi",
				"Pemecah masalah yang baik",
				"Terorganisir",
				"Berpikir logis",
			},
			Blindspots: []string{
				"Terlalu kritis",
				"Perfeksionis berlebihan",
				"Sulit menerima kritik",
				"Kurang spontan",
				"Menganalisis berlebihan",
			},
			UnderStress: []string{
				"Menjadi lebih kritis",
				"Menarik diri untuk menganalisis",
				"Menolak kompromi",
			},
			CommunicationTips: []string{
				"Berikan data dan fakta",
				"Hormati kebutuhan akan detail",
				"Berikan waktu persiapan",
				"Hindari tekanan emosional",
				"Hargai ketelitian mereka",
			},
		},
		en: Profile{
			Name:    "Analyst",
			Summary: "You are a systematic and thorough thinker. Your ability to analyze situations deeply helps make the right decisions. Your high standards ensure quality in every work.",
			Strengths: []string{
				"Analytical and thorough",
				"High quality standards",
				"Good problem solver",
				"Organized",
				"Logical thinking",
			},
			Blindspots: []string{
				"Too critical",
				"Excessive perfectionism",
				"Difficulty accepting criticism",
				"Lacks spontaneity",
				"Over-analyzes",
			},
			UnderStress: []string{
				"Becomes more critical",
				"Withdraws to analyze",
				"Refuses compromise",
			},
			CommunicationTips: []string{
				"Provide data and facts",
				"Respect the need for detail",
				"Give preparation time",
				"Avoid emotional pressure",
				"Appreciate their thoroughness",
			},
		},
	},
}
