package generator

import "github.com/quizforge/backend/internal/models"

func mathTemplate(pattern string, op Operation) Template {
	return Template{Pattern: pattern, Operation: op}
}

func staticTemplate(question, answer, explanation string, options ...string) Template {
	return Template{
		Pattern:     question,
		Operation:   OpStatic,
		Answer:      answer,
		Options:     options,
		Explanation: explanation,
	}
}

func defaultTemplates() map[Subject]map[models.Difficulty][]Template {
	return map[Subject]map[models.Difficulty][]Template{
		SubjectMath: {
			models.DifficultyEasy: {
				mathTemplate("{a} + {b} = ?", OpAddition),
				mathTemplate("{a} - {b} = ?", OpSubtraction),
				mathTemplate("{a} × {b} = ?", OpMultiplication),
				mathTemplate("{a} ÷ {b} = ?", OpDivision),
				mathTemplate("{a}'nın %{b}'si kaçtır?", OpPercentageBasic),
				mathTemplate("{a} sayısının yarısı kaçtır?", OpHalf),
			},
			models.DifficultyMedium: {
				mathTemplate("{a}² = ?", OpSquare),
				mathTemplate("√{a} = ?", OpSqrt),
				mathTemplate("{a}x + {b} = {c}, x = ?", OpLinearEquation),
				mathTemplate("{a}% of {b} = ?", OpPercentage),
				mathTemplate("({a} + {b}) × {c} = ?", OpOrderOperations),
				mathTemplate("{a}/{b} + {c}/{d} = ?", OpFractionAddition),
			},
			models.DifficultyHard: {
				mathTemplate("∫({a}x + {b})dx = ?", OpIntegral),
				mathTemplate("d/dx({a}x² + {b}x + {c}) = ?", OpDerivative),
				mathTemplate("sin²θ + cos²θ = ?", OpTrigonometry),
				mathTemplate("{a}x² + {b}x + {c} = 0 denkleminin kökleri?", OpQuadratic),
				mathTemplate("log₂({a}) = ?", OpLogarithm),
			},
			models.DifficultyExpert: {
				mathTemplate("lim(x→∞) ({a}x² + {b}x + {c})/(x²) = ?", OpLimit),
				mathTemplate("∫₀^π sin(x)dx = ?", OpDefiniteIntegral),
				mathTemplate("∑(n=1 to ∞) 1/n² = ?", OpInfiniteSeries),
				mathTemplate("f(x) = {a}x³ + {b}x² + {c}x + {d} fonksiyonunun türevi?", OpPolynomialDerivative),
			},
		},
		SubjectHistory: {
			models.DifficultyEasy: {
				staticTemplate("Osmanlı İmparatorluğu hangi yılda kuruldu?", "1299",
					"Osmanlı İmparatorluğu 1299 yılında Osman Bey tarafından kurulmuştur.",
					"1299", "1453", "1071", "1326"),
				staticTemplate("İstanbul'un fethi hangi yılda gerçekleşti?", "1453",
					"İstanbul, 1453 yılında II. Mehmet tarafından fethedilmiştir.",
					"1453", "1299", "1402", "1500"),
				staticTemplate("Türkiye Cumhuriyeti hangi yılda kuruldu?", "1923",
					"Türkiye Cumhuriyeti 29 Ekim 1923'te ilan edilmiştir.",
					"1923", "1922", "1924", "1920"),
				staticTemplate("Atatürk hangi yılda doğdu?", "1881",
					"Mustafa Kemal Atatürk 1881 yılında Selanik'te doğmuştur.",
					"1881", "1880", "1882", "1879"),
				staticTemplate("Malazgirt Savaşı hangi yılda yapıldı?", "1071",
					"Malazgirt Savaşı 1071 yılında Sultan Alparslan önderliğinde yapılmıştır.",
					"1071", "1099", "1453", "1299"),
			},
			models.DifficultyMedium: {
				staticTemplate("Tanzimat Fermanı hangi padişah döneminde ilan edildi?", "Abdülmecit",
					"Tanzimat Fermanı 1839'da Sultan Abdülmecit döneminde ilan edilmiştir.",
					"Abdülmecit", "Mahmut II", "Abdülhamit II", "Selim III"),
				staticTemplate("Milli Mücadele dönemi hangi yıllar arasındadır?", "1919-1922",
					"Milli Mücadele 19 Mayıs 1919'da başlayıp 1922'de sona ermiştir.",
					"1919-1922", "1914-1918", "1923-1925", "1920-1923"),
				staticTemplate("Lozan Antlaşması hangi yılda imzalandı?", "1923",
					"Lozan Antlaşması 24 Temmuz 1923'te imzalanmıştır.",
					"1923", "1922", "1924", "1920"),
				staticTemplate("İlk Türk-İslam devleti hangisidir?", "Karahanlılar",
					"Karahanlılar ilk Türk-İslam devletlerinden biridir.",
					"Karahanlılar", "Gazneliler", "Selçuklular", "Osmanlı"),
				staticTemplate("Çanakkale Savaşları hangi yılda gerçekleşti?", "1915",
					"Çanakkale Savaşları 1915 yılında yapılmıştır.",
					"1915", "1914", "1916", "1917"),
			},
			models.DifficultyHard: {
				staticTemplate("Osmanlı'da ilk anayasa hangi padişah döneminde ilan edildi?", "II. Abdülhamit",
					"İlk Osmanlı Anayasası (Kanuni Esasi) 1876'da II. Abdülhamit döneminde ilan edilmiştir.",
					"II. Abdülhamit", "V. Murat", "III. Selim", "II. Mahmut"),
				staticTemplate("Kut'ül Amare Zaferi hangi yılda gerçekleşti?", "1916",
					"Kut'ül Amare Zaferi 1916 yılında Halil Paşa komutasında kazanılmıştır.",
					"1916", "1915", "1917", "1914"),
				staticTemplate("Sivas Kongresi hangi tarihlerde yapıldı?", "4-11 Eylül 1919",
					"Sivas Kongresi 4-11 Eylül 1919 tarihleri arasında yapılmıştır.",
					"4-11 Eylül 1919", "23 Temmuz 1919", "19 Mayıs 1919", "1-7 Ağustos 1919"),
				staticTemplate("Amasya Genelgesi hangi tarihte yayınlandı?", "22 Haziran 1919",
					"Amasya Genelgesi 22 Haziran 1919'da yayınlanmıştır.",
					"22 Haziran 1919", "19 Mayıs 1919", "23 Temmuz 1919", "4 Eylül 1919"),
			},
			models.DifficultyExpert: {
				staticTemplate("Osmanlı'da Devşirme sistemi hangi padişah döneminde kurumlaştı?", "I. Murat",
					"Devşirme sistemi I. Murat döneminde kurumlaşmıştır.",
					"I. Murat", "Orhan Bey", "I. Bayezit", "Yıldırım Bayezit"),
				staticTemplate("Karlofça Antlaşması hangi yılda imzalandı?", "1699",
					"Karlofça Antlaşması 1699 yılında imzalanmış, Osmanlı'nın ilk toprak kaybını kabul ettiği antlaşmadır.",
					"1699", "1683", "1718", "1774"),
				staticTemplate("Türk Tarih Kurumu hangi yılda kuruldu?", "1931",
					"Türk Tarih Kurumu 1931 yılında Atatürk'ün direktifiyle kurulmuştur.",
					"1931", "1928", "1933", "1925"),
			},
		},
		SubjectEnglish: {
			models.DifficultyEasy: {
				staticTemplate("What is 'merhaba' in English?", "Hello",
					"'Merhaba' kelimesinin İngilizce karşılığı 'Hello'dur.",
					"Hello", "Goodbye", "Thank you", "Please"),
				staticTemplate("How do you say 'köpek' in English?", "Dog",
					"'Köpek' kelimesinin İngilizce karşılığı 'Dog'dur.",
					"Dog", "Cat", "Bird", "Fish"),
				staticTemplate("What does 'book' mean in Turkish?", "Kitap",
					"'Book' kelimesi Türkçe'de 'Kitap' anlamına gelir.",
					"Kitap", "Kalem", "Masa", "Sandalye"),
				staticTemplate("What is the opposite of 'big'?", "Small",
					"'Big' kelimesinin zıttı 'Small'dur.",
					"Small", "Large", "Huge", "Giant"),
				staticTemplate("How do you say 'water' in Turkish?", "Su",
					"'Water' kelimesinin Türkçe karşılığı 'Su'dur.",
					"Su", "Süt", "Çay", "Kahve"),
			},
			models.DifficultyMedium: {
				staticTemplate("Which is correct? 'I ____ to school yesterday.'", "went",
					"Geçmiş zaman için 'went' kullanılır.",
					"went", "go", "going", "goes"),
				staticTemplate("What does 'beautiful' mean?", "Güzel",
					"'Beautiful' kelimesi 'Güzel' anlamına gelir.",
					"Güzel", "Çirkin", "Büyük", "Küçük"),
				staticTemplate("Choose the correct form: 'She ____ English very well.'", "speaks",
					"Üçüncü tekil şahıs için 'speaks' kullanılır.",
					"speaks", "speak", "speaking", "spoke"),
				staticTemplate("What is the past tense of 'eat'?", "ate",
					"'Eat' fiilinin geçmiş hali 'ate'dir.",
					"ate", "eaten", "eating", "eats"),
				staticTemplate("Which article is correct? '____ apple'", "An",
					"Sesli harfle başlayan kelimeler için 'an' kullanılır.",
					"An", "A", "The", "No article"),
			},
			models.DifficultyHard: {
				staticTemplate("Which sentence uses the present perfect correctly?", "I have lived here for 5 years",
					"Present perfect tense için 'have/has + past participle' yapısı kullanılır.",
					"I have lived here for 5 years", "I am living here for 5 years", "I live here for 5 years", "I lived here for 5 years"),
				staticTemplate("What is the passive form of 'They built the house'?", "The house was built by them",
					"Geçmiş zamanda passive yapı 'was/were + past participle' şeklindedir.",
					"The house was built by them", "The house is built by them", "The house has been built by them", "The house will be built by them"),
				staticTemplate("Choose the correct conditional: 'If I ____ rich, I would travel.'", "were",
					"Second conditional'da 'were' kullanılır.",
					"were", "was", "am", "will be"),
				staticTemplate("What type of word is 'quickly'?", "Adverb",
					"'Quickly' bir zarftır (adverb).",
					"Adverb", "Adjective", "Noun", "Verb"),
			},
			models.DifficultyExpert: {
				staticTemplate("Identify the subjunctive mood: 'If I ____ you, I would study harder.'", "were",
					"Subjunctive mood'da 'were' kullanılır.",
					"were", "was", "am", "will be"),
				staticTemplate("What is the correct form? 'I wish I ____ taller.'", "were",
					"Wish yapısından sonra subjunctive 'were' kullanılır.",
					"were", "was", "am", "will be"),
				staticTemplate("Choose the correct: 'Neither John nor Mary ____ here.'", "is",
					"Neither...nor yapısında son ögeye göre fiil seçilir.",
					"is", "are", "was", "were"),
			},
		},
		SubjectScience: {
			models.DifficultyEasy: {
				staticTemplate("Suyun kaynama noktası kaç derecedir?", "100°C",
					"Su deniz seviyesinde 100°C'de kaynar.",
					"100°C", "0°C", "50°C", "200°C"),
				staticTemplate("İnsanın kaç duyu organı vardır?", "5",
					"İnsanın görme, işitme, koklama, tatma ve dokunma olmak üzere 5 duyu organı vardır.",
					"5", "4", "6", "7"),
				staticTemplate("Güneş sisteminde kaç gezegen vardır?", "8",
					"Güneş sisteminde 8 gezegen bulunmaktadır.",
					"8", "9", "7", "10"),
				staticTemplate("En sert mineral hangisidir?", "Elmas",
					"Elmas doğadaki en sert mineraldir.",
					"Elmas", "Altın", "Demir", "Kuvars"),
			},
			models.DifficultyMedium: {
				staticTemplate("DNA'nın açılımı nedir?", "Deoksiribonükleik Asit",
					"DNA, Deoksiribonükleik Asit'in kısaltmasıdır.",
					"Deoksiribonükleik Asit", "Ribonükleik Asit", "Amino Asit", "Protein"),
				staticTemplate("Fotosentez hangi organellerde gerçekleşir?", "Kloroplast",
					"Fotosentez kloroplastlarda gerçekleşir.",
					"Kloroplast", "Mitokondri", "Ribozom", "Çekirdek"),
				staticTemplate("Newton'un kaç hareket yasası vardır?", "3",
					"Newton'un 3 hareket yasası vardır.",
					"3", "2", "4", "5"),
			},
			models.DifficultyHard: {
				staticTemplate("Heisenberg Belirsizlik İlkesi neyi ifade eder?", "Konum ve momentumun aynı anda kesin ölçülemezliği",
					"Heisenberg İlkesi, bir parçacığın konumu ve momentumunun aynı anda kesin olarak ölçülemeyeceğini belirtir.",
					"Konum ve momentumun aynı anda kesin ölçülemezliği", "Enerjinin korunumu", "Kütlenin enerjiye dönüşümü", "Işık hızının sabitliği"),
			},
		},
	}
}
