package database

import (
	"log"
	"os"

	"github.com/bimsrama/Relasi4warna-main/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func seedAdminUser(db *gorm.DB) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@relasi4warna.com"
	}

	var count int64
	db.Model(&model.User{}).Where("email = ?", adminEmail).Count(&count)
	if count > 0 {
		return nil
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "Admin123!"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.User{
		Name:     "Admin",
		Email:    adminEmail,
		Password: string(hash),
		Role:     model.RoleAdmin,
		Language: "id",
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}
	log.Printf("Admin user created: %s", adminEmail)
	return nil
}

// stressMarkerIndex marks the question positions whose driver answers count
// toward the stress flag. Fixed positions, same for every series.
func stressMarkerIndex(idx int) bool {
	return idx == 0 || idx == 5 || idx == 12 || idx == 18
}

func seedQuestions(db *gorm.DB) error {
	for series, bank := range questionBank {
		var count int64
		db.Model(&model.Question{}).Where("series = ?", series).Count(&count)
		if count > 0 {
			continue
		}
		for idx, q := range bank {
			question := &model.Question{
				Series:       series,
				SortOrder:    idx + 1,
				TextID:       q.textID,
				TextEN:       q.textEN,
				Options:      q.options,
				StressMarker: stressMarkerIndex(idx),
				Active:       true,
			}
			if err := db.Create(question).Error; err != nil {
				return err
			}
		}
		log.Printf("Seeded %d questions for series %s", len(bank), series)
	}
	return nil
}

type seedQuestion struct {
	textID  string
	textEN  string
	options []model.QuestionOption
}

func opts(driverID, driverEN, sparkID, sparkEN, anchorID, anchorEN, analystID, analystEN string) []model.QuestionOption {
	return []model.QuestionOption{
		{Archetype: "driver", TextID: driverID, TextEN: driverEN},
		{Archetype: "spark", TextID: sparkID, TextEN: sparkEN},
		{Archetype: "anchor", TextID: anchorID, TextEN: anchorEN},
		{Archetype: "analyst", TextID: analystID, TextEN: analystEN},
	}
}

// questionBank holds the forced-choice items per series. Every option maps to
// exactly one archetype; order within a question is always
// driver/spark/anchor/analyst, the client shuffles for display.
var questionBank = map[string][]seedQuestion{
	"family": {
		{
			"Saat keluarga menghadapi masalah mendadak, apa yang biasanya kamu lakukan?",
			"When your family faces a sudden problem, what do you usually do?",
			opts(
				"Langsung ambil alih dan putuskan langkahnya", "Take charge and decide the next step",
				"Cairkan suasana supaya semua tetap tenang", "Lighten the mood so everyone stays calm",
				"Dengarkan dulu perasaan setiap orang", "Listen to how everyone feels first",
				"Kumpulkan fakta sebelum menyimpulkan", "Gather the facts before concluding",
			),
		},
		{
			"Di acara kumpul keluarga besar, kamu paling sering...",
			"At a big family gathering, you are most often...",
			opts(
				"Mengatur jadwal dan memastikan acara jalan", "Organizing the schedule and keeping things on track",
				"Menjadi pusat cerita dan tawa", "At the center of stories and laughter",
				"Membantu di dapur dan menemani yang sepi", "Helping in the kitchen and keeping the quiet ones company",
				"Mengamati dari pinggir sambil menilai suasana", "Observing from the side and reading the room",
			),
		},
		{
			"Ketika orang tua meminta pendapatmu tentang keputusan besar...",
			"When your parents ask your opinion on a big decision...",
			opts(
				"Kuberikan jawaban tegas dan jelas", "I give a firm, clear answer",
				"Kuajak mereka melihat sisi positifnya", "I help them see the bright side",
				"Kutanya dulu apa yang mereka rasakan", "I first ask how they feel about it",
				"Kubuatkan daftar untung-ruginya", "I lay out the pros and cons",
			),
		},
		{
			"Saat ada konflik antara saudara, peranmu biasanya...",
			"When siblings are in conflict, your usual role is...",
			opts(
				"Menentukan siapa yang harus mengalah", "Deciding who should back down",
				"Mengalihkan dengan candaan agar reda", "Defusing it with humor",
				"Menjadi penengah yang menenangkan", "Being the calming mediator",
				"Mengurai akar masalahnya satu per satu", "Untangling the root cause step by step",
			),
		},
		{
			"Tradisi keluarga yang paling kamu hargai adalah...",
			"The family tradition you value most is...",
			opts(
				"Yang membuat keluarga makin maju", "The one that moves the family forward",
				"Yang paling seru dan ditunggu-tunggu", "The most fun and anticipated one",
				"Yang mempererat kebersamaan", "The one that deepens togetherness",
				"Yang punya makna dan sejarah jelas", "The one with clear meaning and history",
			),
		},
		{
			"Jika rencana liburan keluarga tiba-tiba berantakan...",
			"If the family holiday plan suddenly falls apart...",
			opts(
				"Kususun rencana baru saat itu juga", "I draft a new plan on the spot",
				"Kuajak semua menikmati spontanitasnya", "I get everyone to enjoy the spontaneity",
				"Kupastikan tidak ada yang kecewa berat", "I make sure no one is badly disappointed",
				"Kucari tahu dulu kenapa bisa gagal", "I first figure out why it fell through",
			),
		},
		{
			"Cara favoritmu menunjukkan sayang ke keluarga...",
			"Your favorite way of showing love to family...",
			opts(
				"Menyelesaikan masalah mereka", "Solving their problems",
				"Membuat momen seru bersama", "Creating fun moments together",
				"Selalu hadir saat dibutuhkan", "Always being there when needed",
				"Memberi saran yang dipikirkan matang", "Giving well-thought-out advice",
			),
		},
		{
			"Saat anggota keluarga bercerita panjang tentang harinya...",
			"When a family member talks at length about their day...",
			opts(
				"Kupotong untuk langsung ke intinya", "I cut in to get to the point",
				"Kutimpali dengan cerita serupa", "I chime in with a similar story",
				"Kudengarkan sampai selesai", "I listen all the way through",
				"Kutanyakan detail yang kurang jelas", "I ask about the unclear details",
			),
		},
		{
			"Dalam urusan keuangan keluarga, kamu cenderung...",
			"In family money matters, you tend to...",
			opts(
				"Menetapkan target dan menagih komitmen", "Set targets and hold everyone to them",
				"Percaya rezeki akan datang", "Trust that things will work out",
				"Mengutamakan kebutuhan bersama", "Put shared needs first",
				"Mencatat dan menghitung semuanya", "Track and calculate everything",
			),
		},
		{
			"Kalau keluargamu digambarkan sebagai tim, kamu adalah...",
			"If your family were a team, you would be...",
			opts(
				"Kaptennya", "The captain",
				"Penyemangatnya", "The cheerleader",
				"Perekatnya", "The glue",
				"Penyusun strateginya", "The strategist",
			),
		},
		{
			"Saat merencanakan acara keluarga, hal terpenting bagimu...",
			"When planning a family event, the most important thing for you...",
			opts(
				"Acara selesai sesuai target", "The event hits its goals",
				"Semua orang bersenang-senang", "Everyone has a great time",
				"Tidak ada yang merasa ditinggalkan", "No one feels left out",
				"Anggaran dan jadwal masuk akal", "The budget and schedule make sense",
			),
		},
		{
			"Ketika keluarga memintamu mengalah demi kedamaian...",
			"When family asks you to give in for the sake of peace...",
			opts(
				"Kulawan jika aku yakin benar", "I push back if I believe I am right",
				"Kucari jalan tengah yang menyenangkan", "I find a middle ground everyone enjoys",
				"Kuterima demi hubungan baik", "I accept it for the relationship",
				"Kuminta alasan yang masuk akal dulu", "I ask for a sound reason first",
			),
		},
		{
			"Saat keluarga menghadapi kabar buruk, reaksi pertamamu...",
			"When the family gets bad news, your first reaction...",
			opts(
				"Langsung menyusun langkah penanganan", "Immediately map out what to do",
				"Menghibur dan menjaga harapan", "Comfort everyone and keep hope up",
				"Memeluk dan menemani yang terpukul", "Hold and stay with those hit hardest",
				"Memverifikasi kabar itu dulu", "Verify the news first",
			),
		},
	},
	"business": {
		{
			"Saat proyek di kantor mendadak kacau, kamu...",
			"When a project at work suddenly goes sideways, you...",
			opts(
				"Ambil kendali dan bagi ulang tugas", "Take control and reassign tasks",
				"Jaga semangat tim tetap menyala", "Keep the team's spirits up",
				"Pastikan tidak ada yang saling menyalahkan", "Make sure no one turns on each other",
				"Telusuri data untuk menemukan penyebabnya", "Dig into the data to find the cause",
			),
		},
		{
			"Dalam rapat, kamu dikenal sebagai orang yang...",
			"In meetings, you are known as the person who...",
			opts(
				"Mendorong keputusan cepat", "Pushes for quick decisions",
				"Melempar ide-ide segar", "Throws out fresh ideas",
				"Menjaga diskusi tetap sehat", "Keeps the discussion healthy",
				"Menanyakan bukti dan angka", "Asks for evidence and numbers",
			),
		},
		{
			"Gaya kerjamu paling cocok digambarkan sebagai...",
			"Your work style is best described as...",
			opts(
				"Cepat dan berorientasi hasil", "Fast and results-driven",
				"Dinamis dan penuh improvisasi", "Dynamic and improvisational",
				"Stabil dan bisa diandalkan", "Steady and dependable",
				"Teliti dan sistematis", "Meticulous and systematic",
			),
		},
		{
			"Saat menerima kritik dari atasan...",
			"When receiving criticism from your boss...",
			opts(
				"Kubalas dengan rencana perbaikan", "I respond with an improvement plan",
				"Kuterima ringan lalu lanjut bekerja", "I take it lightly and move on",
				"Kurenungkan dampaknya ke hubungan kerja", "I reflect on what it means for the relationship",
				"Kuminta contoh konkretnya", "I ask for concrete examples",
			),
		},
		{
			"Rekan kerja ideal bagimu adalah yang...",
			"Your ideal coworker is someone who...",
			opts(
				"Sama ambisiusnya denganmu", "Matches your ambition",
				"Membuat hari kerja terasa ringan", "Makes the workday feel light",
				"Bisa dipercaya dalam jangka panjang", "Can be trusted for the long haul",
				"Bekerja rapi dan berargumen logis", "Works neatly and argues logically",
			),
		},
		{
			"Saat tenggat waktu mepet dan tim mulai panik...",
			"When the deadline is tight and the team starts panicking...",
			opts(
				"Kupersingkat diskusi, langsung eksekusi", "I cut discussion short and execute",
				"Kucairkan ketegangan dulu", "I break the tension first",
				"Kutenangkan satu per satu", "I calm people down one by one",
				"Kuprioritaskan ulang daftar kerja", "I reprioritize the task list",
			),
		},
		{
			"Dalam negosiasi, kekuatan utamamu adalah...",
			"In a negotiation, your main strength is...",
			opts(
				"Keberanian menekan di saat tepat", "Daring to push at the right moment",
				"Membangun suasana yang hangat", "Building a warm atmosphere",
				"Kesabaran mendengar semua pihak", "Patience to hear all sides",
				"Penguasaan detail kesepakatan", "Command of the deal's details",
			),
		},
		{
			"Promosi jabatan paling menarik bagimu karena...",
			"A promotion appeals to you most because of...",
			opts(
				"Wewenang untuk menentukan arah", "The authority to set direction",
				"Panggung dan pengakuan baru", "The new stage and recognition",
				"Kesempatan mengayomi tim", "The chance to look after a team",
				"Akses ke masalah yang lebih kompleks", "Access to more complex problems",
			),
		},
		{
			"Saat harus presentasi mendadak tanpa persiapan...",
			"When you must present suddenly without preparation...",
			opts(
				"Kusampaikan poin utama dengan yakin", "I deliver the key points with confidence",
				"Kuandalkan spontanitas dan humor", "I rely on spontaneity and humor",
				"Kuajak audiens berdiskusi santai", "I turn it into a relaxed discussion",
				"Kuminta waktu lima menit menyusun kerangka", "I ask for five minutes to outline",
			),
		},
		{
			"Keputusan bisnis terbaik menurutmu lahir dari...",
			"The best business decisions come from...",
			opts(
				"Insting yang berani", "Bold instinct",
				"Ide yang tak terduga", "Unexpected ideas",
				"Kesepakatan yang didukung semua", "Consensus everyone backs",
				"Analisis yang dingin", "Cold analysis",
			),
		},
		{
			"Jika anak buahmu gagal memenuhi target...",
			"If someone on your team misses a target...",
			opts(
				"Kutegur langsung dan minta rencana baru", "I call it out and ask for a new plan",
				"Kusemangati agar bangkit lagi", "I fire them up to bounce back",
				"Kutanya apa kendalanya di sisi personal", "I ask what got in the way personally",
				"Kuanalisis di mana prosesnya bocor", "I analyze where the process leaked",
			),
		},
		{
			"Lingkungan kerja impianmu adalah yang...",
			"Your dream work environment is one that...",
			opts(
				"Memberi ruang untuk memimpin", "Gives you room to lead",
				"Selalu ada hal baru setiap hari", "Has something new every day",
				"Terasa seperti keluarga", "Feels like family",
				"Menghargai kerja yang presisi", "Values precise work",
			),
		},
		{
			"Saat perusahaan mengumumkan perubahan besar mendadak...",
			"When the company announces a sudden major change...",
			opts(
				"Kucari cara memanfaatkannya lebih dulu", "I look for how to get ahead of it",
				"Kusambut sebagai petualangan baru", "I welcome it as a new adventure",
				"Kupastikan timku tidak goyah", "I make sure my team stays grounded",
				"Kupelajari dokumen perubahannya dulu", "I study the change documents first",
			),
		},
	},
	"friendship": {
		{
			"Saat sahabatmu menghadapi masalah besar, kamu...",
			"When your best friend faces a big problem, you...",
			opts(
				"Bantu dia menyusun langkah keluar", "Help them map a way out",
				"Hibur dia sampai bisa tertawa lagi", "Cheer them up until they laugh again",
				"Temani tanpa banyak bicara", "Stay with them without many words",
				"Bantu dia melihat masalah secara objektif", "Help them see it objectively",
			),
		},
		{
			"Dalam kelompok pertemanan, kamu biasanya...",
			"In your friend group, you are usually...",
			opts(
				"Yang menentukan rencana", "The one who decides the plan",
				"Yang menghidupkan suasana", "The one who brings the energy",
				"Yang menjaga semua tetap akur", "The one who keeps everyone together",
				"Yang paling tahu detail dan informasi", "The one who knows the details",
			),
		},
		{
			"Teman seperti apa yang paling kamu cari?",
			"What kind of friend do you look for most?",
			opts(
				"Yang bisa diajak maju bersama", "One to grow and win with",
				"Yang seru diajak ke mana saja", "One who is fun anywhere",
				"Yang setia dalam susah dan senang", "One loyal in good times and bad",
				"Yang nyambung diajak diskusi dalam", "One for deep conversations",
			),
		},
		{
			"Kalau ada teman yang berkhianat...",
			"If a friend betrays you...",
			opts(
				"Kuhadapi dan kutuntut penjelasan", "I confront them and demand an explanation",
				"Kujauhi sambil tetap santai", "I drift away but keep it light",
				"Kucoba memahami lalu memaafkan", "I try to understand, then forgive",
				"Kupertimbangkan dulu semua faktanya", "I weigh all the facts first",
			),
		},
		{
			"Rencana akhir pekan idealmu bersama teman...",
			"Your ideal weekend plan with friends...",
			opts(
				"Kegiatan menantang yang ada targetnya", "A challenge with a goal",
				"Acara spontan tanpa rencana", "Something spontaneous, no plan",
				"Nongkrong santai yang hangat", "A cozy, relaxed hangout",
				"Kegiatan yang sudah tersusun rapi", "A well-organized itinerary",
			),
		},
		{
			"Saat dua sahabatmu bertengkar hebat...",
			"When two of your close friends fight badly...",
			opts(
				"Kupaksa mereka duduk dan selesaikan", "I make them sit down and settle it",
				"Kubuat acara bareng agar cair lagi", "I plan something together to thaw it",
				"Kudengarkan kedua sisi dengan sabar", "I hear both sides patiently",
				"Kuhindari memihak sebelum jelas", "I avoid taking sides before it is clear",
			),
		},
		{
			"Pesan singkatmu ke teman biasanya...",
			"Your texts to friends are usually...",
			opts(
				"Singkat dan langsung ke tujuan", "Short and to the point",
				"Penuh emoji dan candaan", "Full of emojis and jokes",
				"Hangat dan menanyakan kabar", "Warm, checking in on them",
				"Panjang dan terstruktur", "Long and structured",
			),
		},
		{
			"Kamu paling kesal pada teman yang...",
			"You get most annoyed by friends who...",
			opts(
				"Lambat mengambil keputusan", "Are slow to decide",
				"Terlalu kaku dan serius", "Are stiff and overly serious",
				"Kasar pada orang lain", "Are harsh to others",
				"Asal bicara tanpa dasar", "Talk without any basis",
			),
		},
		{
			"Saat temanmu minta pendapat jujur tentang pilihannya...",
			"When a friend asks your honest opinion about their choice...",
			opts(
				"Kukatakan apa adanya meski pahit", "I say it straight even if it stings",
				"Kusampaikan dengan cara yang ringan", "I deliver it in a light way",
				"Kupilih kata agar tidak melukai", "I choose words that will not hurt",
				"Kuberi perbandingan pilihan lain", "I compare it against the alternatives",
			),
		},
		{
			"Persahabatan menurutmu paling diuji oleh...",
			"Friendship is tested most by...",
			opts(
				"Persaingan", "Competition",
				"Kebosanan", "Boredom",
				"Jarak dan waktu", "Distance and time",
				"Kesalahpahaman", "Misunderstanding",
			),
		},
		{
			"Kalau teman-temanmu mendeskripsikanmu satu kata...",
			"If your friends described you in one word...",
			opts(
				"Tegas", "Decisive",
				"Seru", "Fun",
				"Setia", "Loyal",
				"Bijak", "Wise",
			),
		},
		{
			"Saat diajak ikut rencana yang menurutmu buruk...",
			"When invited into a plan you think is bad...",
			opts(
				"Kutolak dan kuusulkan rencanaku", "I refuse and pitch my own plan",
				"Kuikuti saja, siapa tahu seru", "I go along, it might be fun",
				"Kuikut demi kebersamaan", "I join for the sake of togetherness",
				"Kujabarkan kenapa rencana itu lemah", "I lay out why the plan is weak",
			),
		},
		{
			"Saat kamu sendiri sedang jatuh, kamu berharap temanmu...",
			"When you are the one who is down, you hope your friends...",
			opts(
				"Membantu mencari solusi nyata", "Help find a real solution",
				"Mengajakmu keluar melupakan sejenak", "Take you out to forget for a while",
				"Sekadar hadir di sampingmu", "Simply stay by your side",
				"Membantu memetakan situasimu", "Help you map out your situation",
			),
		},
	},
	"couples": {
		{
			"Saat kalian berdua menghadapi masalah serius...",
			"When the two of you face a serious problem...",
			opts(
				"Aku yang mengambil kendali penyelesaiannya", "I take charge of solving it",
				"Kuajak bicara sambil mencairkan suasana", "I talk it out while keeping things light",
				"Kuutamakan perasaan pasangan dulu", "I put my partner's feelings first",
				"Kuajak duduk dan mengurai masalahnya", "I sit down and break the problem apart",
			),
		},
		{
			"Kencan ideal bagimu adalah...",
			"Your ideal date is...",
			opts(
				"Aktivitas menantang yang memacu adrenalin", "A challenge that gets the adrenaline going",
				"Sesuatu yang spontan dan tak terduga", "Something spontaneous and unexpected",
				"Malam tenang hanya berdua", "A quiet night just the two of us",
				"Acara yang direncanakan dengan detail", "An outing planned in detail",
			),
		},
		{
			"Saat pasanganmu bercerita tentang hari yang berat...",
			"When your partner tells you about a hard day...",
			opts(
				"Kutawarkan solusi langsung", "I offer a solution right away",
				"Kuhibur sampai dia tersenyum", "I cheer them up until they smile",
				"Kupeluk dan kudengarkan", "I hold them and listen",
				"Kubantu memilah mana yang bisa diubah", "I help sort out what can be changed",
			),
		},
		{
			"Dalam memutuskan hal besar bersama (rumah, pindah kota)...",
			"When deciding big things together (a home, moving cities)...",
			opts(
				"Aku cenderung memimpin keputusannya", "I tend to lead the decision",
				"Aku ikut ke mana hati membawa", "I follow where the heart leads",
				"Aku menunggu sampai kami berdua yakin", "I wait until we are both sure",
				"Aku membuat perbandingan menyeluruh", "I build a full comparison",
			),
		},
		{
			"Bahasa cintamu yang paling dominan...",
			"Your dominant love language...",
			opts(
				"Melindungi dan memperjuangkan dia", "Protecting and fighting for them",
				"Kejutan dan momen seru", "Surprises and fun moments",
				"Kehadiran dan sentuhan", "Presence and touch",
				"Perhatian pada detail kecil kesukaannya", "Noticing the small things they love",
			),
		},
		{
			"Saat bertengkar hebat dengan pasangan...",
			"During a big fight with your partner...",
			opts(
				"Aku ingin menyelesaikannya saat itu juga", "I want it settled right then",
				"Aku memilih mencairkan dulu suasananya", "I try to thaw the mood first",
				"Aku diam dulu menjaga agar tak melukai", "I go quiet to avoid wounding them",
				"Aku minta jeda untuk berpikir jernih", "I ask for a pause to think clearly",
			),
		},
		{
			"Hal yang paling membuatmu merasa dicintai...",
			"What makes you feel most loved...",
			opts(
				"Dia mendukung ambisiku", "They back my ambitions",
				"Dia antusias dengan ide-ideku", "They light up at my ideas",
				"Dia selalu ada tanpa diminta", "They are there without being asked",
				"Dia memahami jalan pikiranku", "They understand how I think",
			),
		},
		{
			"Konflik kecil yang berulang (cucian, jadwal) kamu sikapi dengan...",
			"Recurring small conflicts (chores, schedules) you handle by...",
			opts(
				"Membuat aturan dan menegakkannya", "Setting rules and enforcing them",
				"Menjadikannya bahan bercanda", "Turning them into a running joke",
				"Mengalah selama tidak prinsip", "Yielding when it is not a matter of principle",
				"Menyusun sistem pembagian yang adil", "Designing a fair division system",
			),
		},
		{
			"Masa depan hubungan menurutmu dibangun dari...",
			"A relationship's future is built on...",
			opts(
				"Tujuan bersama yang jelas", "Clear shared goals",
				"Kegembiraan yang terus dirawat", "Joy that keeps being renewed",
				"Rasa aman satu sama lain", "Feeling safe with each other",
				"Komunikasi yang jujur dan logis", "Honest, reasoned communication",
			),
		},
		{
			"Saat pasangan butuh waktu sendiri...",
			"When your partner needs time alone...",
			opts(
				"Kutanyakan sampai kapan dan kenapa", "I ask until when and why",
				"Kuisi waktuku dengan kesibukan seru", "I fill my time with something fun",
				"Kuberikan ruang sepenuhnya", "I give them full space",
				"Kuhormati selama alasannya jelas", "I respect it as long as the reason is clear",
			),
		},
		{
			"Kejutan dari pasangan yang paling berkesan...",
			"The most memorable surprise from a partner...",
			opts(
				"Yang mendukung mimpiku", "One that backs my dream",
				"Yang benar-benar tak terduga", "One that is truly unexpected",
				"Yang menunjukkan dia mengenalku", "One that shows they truly know me",
				"Yang dia siapkan dengan teliti", "One they prepared meticulously",
			),
		},
		{
			"Peranmu dalam hubungan lebih sering sebagai...",
			"Your role in the relationship is more often...",
			opts(
				"Penentu arah", "The one who sets direction",
				"Sumber keceriaan", "The source of joy",
				"Penjaga kedamaian", "The keeper of peace",
				"Penimbang keputusan", "The weigher of decisions",
			),
		},
		{
			"Saat hubungan diuji tekanan dari luar (keluarga, pekerjaan)...",
			"When outside pressure tests the relationship (family, work)...",
			opts(
				"Aku pasang badan dan hadapi sumbernya", "I step up and face the source",
				"Kuajak pasangan fokus pada kebahagiaan kami", "I keep us focused on our happiness",
				"Kurapatkan barisan, kami berdua dulu", "I close ranks, the two of us first",
				"Kupisahkan mana tekanan nyata dan asumsi", "I separate real pressure from assumption",
			),
		},
	},
}
