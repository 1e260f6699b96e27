package compatibility

// The matrix holds one record per unordered archetype pair: 4 same-pair and
// 6 cross-pair combinations. Keys are "a_b" in one canonical spelling; the
// resolver tries both orderings, so reversed duplicates are not stored.
// Score and energy are symmetric by construction.

type localized struct {
	id, en string
}

type localizedList struct {
	id, en []string
}

type record struct {
	score      int
	energy     string
	title      localized
	summary    localized
	strengths  localizedList
	challenges localizedList
	tips       localizedList
}

var matrix = map[string]record{
	"driver_driver": {
		score:  65,
		energy: "high",
		title:  localized{id: "Duo Dinamis", en: "Dynamic Duo"},
		summary: localized{
			id: "Dua Driver bersama menciptakan energi tinggi dan momentum luar biasa. Keduanya fokus pada hasil dan efisiensi.",
			en: "Two Drivers together create high energy and incredible momentum. Both are focused on results and efficiency.",
		},
		strengths: localizedList{
			id: []string{
				"Pengambilan keputusan cepat",
				"Fokus pada tujuan yang jelas",
				"Momentum tinggi dalam eksekusi",
				"Tidak takut tantangan besar",
				"Saling memahami kebutuhan akan kontrol",
			},
			en: []string{
				"Quick decision making",
				"Clear goal focus",
				"High momentum in execution",
				"Not afraid of big challenges",
				"Mutual understanding of control needs",
			},
		},
		challenges: localizedList{
			id: []string{
				"Perebutan kendali dan dominasi",
				"Kurang sabar satu sama lain",
				"Kompetisi yang tidak sehat",
				"Kesulitan kompromi",
				"Risiko konflik ego",
			},
			en: []string{
				"Power struggles and dominance",
				"Impatience with each other",
				"Unhealthy competition",
				"Difficulty compromising",
				"Risk of ego conflicts",
			},
		},
		tips: localizedList{
			id: []string{
				"Bagi area tanggung jawab dengan jelas",
				"Jadwalkan waktu untuk mendengarkan, bukan hanya memimpin",
				"Rayakan kemenangan bersama, bukan individu",
				"Latih kesabaran dengan timeout sebelum bereaksi",
			},
			en: []string{
				"Clearly divide areas of responsibility",
				"Schedule time for listening, not just leading",
				"Celebrate victories together, not individually",
				"Practice patience with timeouts before reacting",
			},
		},
	},
	"driver_spark": {
		score:  85,
		energy: "very_high",
		title:  localized{id: "Pemimpin & Inspirator", en: "Leader & Inspirer"},
		summary: localized{
			id: "Kombinasi yang sangat dinamis! Driver memberikan arah dan struktur, sementara Spark membawa energi, kreativitas, dan antusiasme.",
			en: "A highly dynamic combination! Driver provides direction and structure, while Spark brings energy, creativity, and enthusiasm.",
		},
		strengths: localizedList{
			id: []string{
				"Visi besar + eksekusi kreatif",
				"Energi tinggi yang saling melengkapi",
				"Driver memberi fokus, Spark memberi inspirasi",
				"Kemampuan motivasi tim yang kuat",
				"Inovasi dengan arah yang jelas",
			},
			en: []string{
				"Big vision + creative execution",
				"Complementary high energy",
				"Driver gives focus, Spark gives inspiration",
				"Strong team motivation ability",
				"Innovation with clear direction",
			},
		},
		challenges: localizedList{
			id: []string{
				"Spark mungkin merasa dikontrol berlebihan",
				"Driver bisa frustrasi dengan ketidakkonsistenan Spark",
				"Perbedaan dalam menghargai detail vs gambaran besar",
				"Risiko burnout dari terlalu banyak aktivitas",
			},
			en: []string{
				"Spark may feel overly controlled",
				"Driver can get frustrated with Spark's inconsistency",
				"Differences in valuing details vs big picture",
				"Risk of burnout from too many activities",
			},
		},
		tips: localizedList{
			id: []string{
				"Driver: beri ruang kreativitas untuk Spark",
				"Spark: hormati kebutuhan Driver akan struktur",
				"Tetapkan waktu untuk brainstorming bebas",
				"Buat sistem yang fleksibel tapi tetap ada batasan",
			},
			en: []string{
				"Driver: give creative space to Spark",
				"Spark: respect Driver's need for structure",
				"Set aside time for free brainstorming",
				"Create systems that are flexible but have boundaries",
			},
		},
	},
	"driver_anchor": {
		score:  75,
		energy: "balanced",
		title:  localized{id: "Aksi & Stabilitas", en: "Action & Stability"},
		summary: localized{
			id: "Driver yang berorientasi hasil bertemu Anchor yang menjaga harmoni. Kombinasi yang seimbang antara progress dan stabilitas.",
			en: "Results-oriented Driver meets harmony-keeping Anchor. A balanced combination of progress and stability.",
		},
		strengths: localizedList{
			id: []string{
				"Keseimbangan antara dorongan dan kehati-hatian",
				"Anchor menstabilkan intensitas Driver",
				"Driver membantu Anchor keluar dari zona nyaman",
				"Keputusan yang lebih matang",
				"Tim yang solid dan dapat diandalkan",
			},
			en: []string{
				"Balance between drive and caution",
				"Anchor stabilizes Driver's intensity",
				"Driver helps Anchor step out of comfort zone",
				"More mature decisions",
				"Solid and reliable team",
			},
		},
		challenges: localizedList{
			id: []string{
				"Driver bisa frustrasi dengan kecepatan Anchor",
				"Anchor mungkin merasa terburu-buru",
				"Perbedaan prioritas (hasil vs hubungan)",
				"Anchor kesulitan menyuarakan ketidaksetujuan",
			},
			en: []string{
				"Driver may get frustrated with Anchor's pace",
				"Anchor may feel rushed",
				"Different priorities (results vs relationships)",
				"Anchor struggles to voice disagreement",
			},
		},
		tips: localizedList{
			id: []string{
				"Driver: perlambat dan hargai proses",
				"Anchor: berani menyampaikan kebutuhan",
				"Jadwalkan check-in emosional rutin",
				"Buat timeline yang realistis bersama",
			},
			en: []string{
				"Driver: slow down and appreciate the process",
				"Anchor: be brave in expressing needs",
				"Schedule regular emotional check-ins",
				"Create realistic timelines together",
			},
		},
	},
	"driver_analyst": {
		score:  70,
		energy: "focused",
		title:  localized{id: "Eksekutor & Strategis", en: "Executor & Strategist"},
		summary: localized{
			id: "Driver ingin bertindak cepat, Analyst ingin menganalisis dulu. Jika dikelola dengan baik, menghasilkan keputusan yang cepat DAN tepat.",
			en: "Driver wants quick action, Analyst wants to analyze first. If managed well, produces decisions that are both fast AND accurate.",
		},
		strengths: localizedList{
			id: []string{
				"Tindakan yang didukung data",
				"Keputusan strategis yang tereksekusi",
				"Analyst memberikan perspektif yang Driver lewatkan",
				"Kombinasi intuisi dan logika",
				"Hasil yang terukur dan akuntabel",
			},
			en: []string{
				"Data-backed actions",
				"Strategic decisions that get executed",
				"Analyst provides perspective Driver misses",
				"Combination of intuition and logic",
				"Measurable and accountable results",
			},
		},
		challenges: localizedList{
			id: []string{
				"Driver frustrasi dengan analysis paralysis",
				"Analyst merasa didesak tanpa informasi cukup",
				"Perbedaan kecepatan kerja yang signifikan",
				"Konflik antara 'cukup baik' vs 'sempurna'",
			},
			en: []string{
				"Driver frustrated with analysis paralysis",
				"Analyst feels rushed without enough information",
				"Significant difference in work pace",
				"Conflict between 'good enough' vs 'perfect'",
			},
		},
		tips: localizedList{
			id: []string{
				"Tetapkan deadline analisis yang jelas",
				"Driver: hargai kebutuhan akan data",
				"Analyst: berikan rekomendasi, bukan hanya data",
				"Buat framework keputusan bersama",
			},
			en: []string{
				"Set clear analysis deadlines",
				"Driver: appreciate the need for data",
				"Analyst: provide recommendations, not just data",
				"Create a decision framework together",
			},
		},
	},
	"spark_spark": {
		score:  75,
		energy: "explosive",
		title:  localized{id: "Festival Ide", en: "Idea Festival"},
		summary: localized{
			id: "Dua Spark bersama menciptakan ledakan kreativitas dan kegembiraan! Penuh ide brilian, tapi mungkin kesulitan menuntaskan.",
			en: "Two Sparks together create an explosion of creativity and joy! Full of brilliant ideas, but may struggle to complete them.",
		},
		strengths: localizedList{
			id: []string{
				"Kreativitas tanpa batas",
				"Energi positif yang menular",
				"Selalu ada ide baru yang exciting",
				"Lingkungan yang menyenangkan",
				"Kemampuan improvisasi tinggi",
			},
			en: []string{
				"Unlimited creativity",
				"Contagious positive energy",
				"Always new exciting ideas",
				"Fun environment",
				"High improvisation ability",
			},
		},
		challenges: localizedList{
			id: []string{
				"Kesulitan menyelesaikan proyek",
				"Kurang struktur dan organisasi",
				"Terlalu banyak ide, kurang fokus",
				"Menghindari tugas yang membosankan",
				"Risiko chaos tanpa anchor",
			},
			en: []string{
				"Difficulty completing projects",
				"Lack of structure and organization",
				"Too many ideas, not enough focus",
				"Avoiding boring tasks",
				"Risk of chaos without anchor",
			},
		},
		tips: localizedList{
			id: []string{
				"Pilih SATU ide untuk difokuskan",
				"Buat sistem accountability bersama",
				"Jadwalkan 'boring time' untuk admin",
				"Rekrut bantuan untuk detail dan follow-through",
			},
			en: []string{
				"Choose ONE idea to focus on",
				"Create an accountability system together",
				"Schedule 'boring time' for admin tasks",
				"Recruit help for details and follow-through",
			},
		},
	},
	"spark_anchor": {
		score:  90,
		energy: "harmonious",
		title:  localized{id: "Kegembiraan & Kehangatan", en: "Joy & Warmth"},
		summary: localized{
			id: "Kombinasi yang sangat harmonis! Spark membawa kegembiraan dan spontanitas, Anchor memberikan kehangatan dan stabilitas emosional.",
			en: "A very harmonious combination! Spark brings joy and spontaneity, Anchor provides warmth and emotional stability.",
		},
		strengths: localizedList{
			id: []string{
				"Hubungan yang penuh cinta dan kegembiraan",
				"Anchor memberikan rumah yang aman untuk Spark",
				"Spark membawa petualangan ke kehidupan Anchor",
				"Komunikasi yang penuh empati",
				"Keseimbangan antara fun dan keamanan",
			},
			en: []string{
				"Relationship full of love and joy",
				"Anchor provides a safe home for Spark",
				"Spark brings adventure to Anchor's life",
				"Communication full of empathy",
				"Balance between fun and security",
			},
		},
		challenges: localizedList{
			id: []string{
				"Spark mungkin merasa terikat",
				"Anchor bisa kewalahan dengan energi Spark",
				"Perbedaan dalam kebutuhan sosial",
				"Anchor mungkin terlalu mengalah",
			},
			en: []string{
				"Spark may feel tied down",
				"Anchor can be overwhelmed by Spark's energy",
				"Differences in social needs",
				"Anchor may give in too much",
			},
		},
		tips: localizedList{
			id: []string{
				"Spark: jadwalkan waktu berkualitas di rumah",
				"Anchor: ikut sesekali dalam petualangan Spark",
				"Komunikasikan kebutuhan akan ruang/kebersamaan",
				"Ciptakan tradisi yang menyenangkan bersama",
			},
			en: []string{
				"Spark: schedule quality time at home",
				"Anchor: join Spark's adventures occasionally",
				"Communicate needs for space/togetherness",
				"Create fun traditions together",
			},
		},
	},
	"spark_analyst": {
		score:  60,
		energy: "contrasting",
		title:  localized{id: "Kreativitas & Logika", en: "Creativity & Logic"},
		summary: localized{
			id: "Kombinasi yang kontras tapi bisa sangat produktif! Spark membawa ide out-of-the-box, Analyst membantu mewujudkannya dengan sistematis.",
			en: "A contrasting but potentially very productive combination! Spark brings out-of-the-box ideas, Analyst helps realize them systematically.",
		},
		strengths: localizedList{
			id: []string{
				"Ide kreatif + implementasi sistematis",
				"Saling melengkapi kekurangan",
				"Inovasi yang tervalidasi",
				"Perspektif yang sangat berbeda = solusi unik",
				"Analyst memberikan reality check yang dibutuhkan",
			},
			en: []string{
				"Creative ideas + systematic implementation",
				"Complementing each other's weaknesses",
				"Validated innovation",
				"Very different perspectives = unique solutions",
				"Analyst provides needed reality check",
			},
		},
		challenges: localizedList{
			id: []string{
				"Perbedaan gaya komunikasi yang ekstrem",
				"Spark merasa dikritik terus-menerus",
				"Analyst frustrasi dengan ketidakteraturan",
				"Kesulitan memahami cara berpikir satu sama lain",
			},
			en: []string{
				"Extreme difference in communication styles",
				"Spark feels constantly criticized",
				"Analyst frustrated with disorganization",
				"Difficulty understanding each other's thinking",
			},
		},
		tips: localizedList{
			id: []string{
				"Hargai perbedaan sebagai kekuatan",
				"Spark: terima feedback sebagai bantuan",
				"Analyst: sampaikan kritik dengan cara positif",
				"Buat zona bebas kritik untuk brainstorming",
			},
			en: []string{
				"Appreciate differences as strengths",
				"Spark: receive feedback as help",
				"Analyst: deliver criticism positively",
				"Create criticism-free zones for brainstorming",
			},
		},
	},
	"anchor_anchor": {
		score:  80,
		energy: "peaceful",
		title:  localized{id: "Pelabuhan Tenang", en: "Peaceful Harbor"},
		summary: localized{
			id: "Dua Anchor menciptakan lingkungan yang sangat stabil, damai, dan penuh dukungan. Hubungan yang dalam dan tulus.",
			en: "Two Anchors create a very stable, peaceful, and supportive environment. A deep and sincere relationship.",
		},
		strengths: localizedList{
			id: []string{
				"Hubungan yang sangat stabil",
				"Komunikasi yang penuh empati",
				"Saling mendukung tanpa syarat",
				"Rumah yang damai dan harmonis",
				"Loyalitas dan komitmen tinggi",
			},
			en: []string{
				"Very stable relationship",
				"Empathetic communication",
				"Unconditional mutual support",
				"Peaceful and harmonious home",
				"High loyalty and commitment",
			},
		},
		challenges: localizedList{
			id: []string{
				"Terlalu nyaman = kurang pertumbuhan",
				"Menghindari konflik yang perlu dihadapi",
				"Kesulitan membuat perubahan",
				"Mungkin terlalu fokus ke dalam",
				"Kurang spontanitas dan petualangan",
			},
			en: []string{
				"Too comfortable = less growth",
				"Avoiding conflicts that need to be addressed",
				"Difficulty making changes",
				"May be too inward-focused",
				"Lack of spontaneity and adventure",
			},
		},
		tips: localizedList{
			id: []string{
				"Jadwalkan petualangan kecil bersama",
				"Praktikkan menghadapi konflik, bukan menghindari",
				"Dukung pertumbuhan individu masing-masing",
				"Undang energi baru sesekali (teman, aktivitas)",
			},
			en: []string{
				"Schedule small adventures together",
				"Practice facing conflicts, not avoiding",
				"Support each other's individual growth",
				"Invite new energy occasionally (friends, activities)",
			},
		},
	},
	"anchor_analyst": {
		score:  70,
		energy: "thoughtful",
		title:  localized{id: "Hati & Pikiran", en: "Heart & Mind"},
		summary: localized{
			id: "Anchor membawa kehangatan emosional, Analyst membawa kejelasan rasional. Kombinasi yang seimbang jika dikomunikasikan dengan baik.",
			en: "Anchor brings emotional warmth, Analyst brings rational clarity. A balanced combination if communicated well.",
		},
		strengths: localizedList{
			id: []string{
				"Keputusan yang melibatkan logika DAN perasaan",
				"Anchor membantu Analyst terhubung emosional",
				"Analyst membantu Anchor berpikir jernih",
				"Keseimbangan antara empati dan objektivitas",
				"Hubungan yang dalam dan bermakna",
			},
			en: []string{
				"Decisions involving both logic AND feelings",
				"Anchor helps Analyst connect emotionally",
				"Analyst helps Anchor think clearly",
				"Balance between empathy and objectivity",
				"Deep and meaningful relationship",
			},
		},
		challenges: localizedList{
			id: []string{
				"Perbedaan bahasa emosional vs logis",
				"Anchor merasa tidak dipahami secara emosional",
				"Analyst merasa keputusan terlalu emosional",
				"Gaya pemecahan masalah yang berbeda",
			},
			en: []string{
				"Difference between emotional vs logical language",
				"Anchor feels emotionally misunderstood",
				"Analyst feels decisions are too emotional",
				"Different problem-solving styles",
			},
		},
		tips: localizedList{
			id: []string{
				"Analyst: akui perasaan sebelum memberikan solusi",
				"Anchor: sampaikan kebutuhan dengan jelas",
				"Belajar 'bahasa' satu sama lain",
				"Buat waktu untuk emosi DAN analisis",
			},
			en: []string{
				"Analyst: acknowledge feelings before giving solutions",
				"Anchor: express needs clearly",
				"Learn each other's 'language'",
				"Make time for both emotions AND analysis",
			},
		},
	},
	"analyst_analyst": {
		score:  75,
		energy: "intellectual",
		title:  localized{id: "Pikiran Ganda", en: "Double Minds"},
		summary: localized{
			id: "Dua Analyst bersama menciptakan kemitraan yang sangat rasional dan terstruktur. Percakapan yang dalam dan bermakna.",
			en: "Two Analysts together create a very rational and structured partnership. Deep and meaningful conversations.",
		},
		strengths: localizedList{
			id: []string{
				"Percakapan intelektual yang memuaskan",
				"Keputusan yang sangat terpertimbangkan",
				"Saling menghormati kebutuhan akan ruang",
				"Tidak ada drama yang tidak perlu",
				"Efisiensi dalam mengelola kehidupan",
			},
			en: []string{
				"Satisfying intellectual conversations",
				"Very well-considered decisions",
				"Mutual respect for space needs",
				"No unnecessary drama",
				"Efficiency in managing life",
			},
		},
		challenges: localizedList{
			id: []string{
				"Kurang ekspresi emosional",
				"Terlalu banyak analisis, kurang tindakan",
				"Menghindari pembicaraan emosional penting",
				"Hubungan terasa 'dingin' dari luar",
				"Overthinking masalah kecil",
			},
			en: []string{
				"Lack of emotional expression",
				"Too much analysis, not enough action",
				"Avoiding important emotional conversations",
				"Relationship seems 'cold' from outside",
				"Overthinking small problems",
			},
		},
		tips: localizedList{
			id: []string{
				"Jadwalkan waktu untuk koneksi emosional",
				"Praktikkan menyatakan perasaan, bukan hanya pikiran",
				"Batasi waktu analisis sebelum bertindak",
				"Tambahkan elemen spontanitas dan fun",
			},
			en: []string{
				"Schedule time for emotional connection",
				"Practice stating feelings, not just thoughts",
				"Limit analysis time before acting",
				"Add elements of spontaneity and fun",
			},
		},
	},
}
