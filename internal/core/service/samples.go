package service

import (
	"math/rand"

	"github.com/roastify/roast-api/internal/core/domain"
)

// sampleRoasts is the built-in fallback table, indexed [language][style].
// Lookups default to english, then savage, when a key is absent.
var sampleRoasts = map[domain.Language]map[domain.Style][]string{
	domain.LanguageEnglish: {
		domain.StyleSavage: {
			"Holy shit, looking at your photo made my AI crash twice. Even my algorithms are trying to unsee this disaster.",
			"Damn, you're so basic that even vanilla ice cream has more personality than your entire existence.",
			"You're like a software update nobody wants - always popping up at the worst time.",
			"If disappointment was a person, it would look exactly like you and still be embarrassed.",
			"You're the human equivalent of a participation trophy - present but not achieving anything.",
			"Your personality has the depth of a puddle in the Sahara desert.",
			"You're proof that natural selection sometimes takes extended coffee breaks.",
			"Even your reflection tries to look away when you pass a mirror.",
			"You're so forgettable that even Google can't find any results about you.",
			"You're like a Windows error message - annoying, unwanted, and nobody knows how to fix you.",
			"Your life is like airplane WiFi - barely working and disappointing everyone.",
		},
		domain.StyleWitty: {
			"You're like Internet Explorer - slow, outdated, and everyone's trying to replace you with something better.",
			"You're proof that evolution sometimes takes a coffee break and forgets what it's doing.",
			"I've seen more personality in a Windows error message than in your entire existence.",
			"You're like a dictionary - you have all the words but no one wants to read you.",
			"You're like a smartphone with 1% battery - barely functional and about to die.",
			"If life was a video game, you'd be the tutorial everyone skips.",
			"You're like a Netflix recommendation - nobody asked for you but you keep showing up.",
			"Your brain is like a browser with 47 tabs open - slow, confused, and about to crash.",
			"You're the reason they put instructions on shampoo bottles.",
			"If common sense was currency, you'd be living in poverty.",
			"Your thought process is like dial-up internet - slow, outdated, and frustrating for everyone involved.",
		},
		domain.StyleBrutal: {
			"You look like you were assembled by someone who had never seen a human before.",
			"You look like you were drawn by someone wearing oven mitts.",
			"Your gene pool needs a lifeguard because clearly someone's drowning in there.",
			"If you were twice as smart, you'd still be stupid.",
			"Your family tree must be a cactus because everybody on it is a prick.",
			"Looking at you is like looking at a car accident - horrifying but I can't look away.",
			"You're the human equivalent of a migraine.",
			"If I had a dollar for every brain cell you have, I'd have 25 cents.",
		},
		domain.StylePlayful: {
			"Aww, you're like a participation trophy - nobody really wanted you, but here you are anyway!",
			"Bless your heart, you're trying so hard! It's like watching a penguin try to fly - hilarious but sad.",
			"You're like a golden retriever - adorable, loyal, but definitely not the brightest bulb in the box.",
			"You're like a GPS that's permanently set to 'scenic route' - you'll get there eventually, maybe.",
			"You're like a chocolate teapot - sweet but completely useless.",
			"Bless you, you're like autocorrect - trying to help but usually making things worse.",
			"You're like a solar-powered flashlight - great idea in theory, questionable in practice.",
			"You're like a diet soda - technically functional but leaves everyone feeling unsatisfied.",
			"Aww, you're like a pet rock - low maintenance but doesn't really do much.",
			"You're charming like a dad joke - nobody admits to liking you but secretly we all do.",
		},
	},
	domain.LanguageHindi: {
		domain.StyleSavage: {
			"भाई तेरी शक्ल देखकर मेरा AI भी हैंग हो गया। भगवान ने तुझे बनाते वक्त जरूर कोई गलती की है।",
			"तू इतना बेकार है कि तेरे सामने प्याज भी रोना बंद कर देता है।",
			"तू software update की तरह है - कोई नहीं चाहता लेकिन फिर भी आता रहता है।",
			"तेरी personality एक रेगिस्तानी तालाब जितनी गहरी है।",
			"तेरा reflection भी आईने में अपना मुंह छुपाता है।",
			"तू इतना भुलक्कड़ है कि Google भी तेरे बारे में कुछ नहीं ढूंढ पाता।",
			"अगर बेवकूफी से calories burn होती तो तू दुनिया का सबसे fit आदमी होता।",
			"तेरी जिंदगी airplane WiFi की तरह है - मुश्किल से काम करती है और सबको disappoint करती है।",
		},
		domain.StyleWitty: {
			"तू बिल्कुल Internet Explorer की तरह है - धीमा, पुराना, और सबको तुझसे छुटकारा चाहिए।",
			"अगर बेवकूफी Olympic sport होती तो तू gold medal जीत जाता।",
			"तेरा दिमाग इतना खाली है कि उसमें echo सुनाई देती है।",
			"तू dictionary की तरह है - सारे words हैं लेकिन कोई पढ़ना नहीं चाहता।",
			"अगर life video game होती तो तू वो tutorial होता जिसे सब skip करते हैं।",
			"तेरा brain 47 tabs खुले browser की तरह है - slow, confused, और crash होने वाला।",
			"तेरी वजह से shampoo bottles पर instructions लिखने पड़ते हैं।",
			"अगर common sense currency होती तो तू गरीबी में जी रहा होता।",
		},
		domain.StyleBrutal: {
			"तुझे देख कर लगता है evolution ने तुझे half-download कर के छोड़ दिया।",
			"तुझसे बात करने से बेहतर है दीवार से बहस करना, कम से कम वो उतनी बकचोदी नहीं करती।",
			"तेरी शक्ल देख के तो mirror भी self-respect में खुद को तोड़ दे।",
			"तू उस WhatsApp ग्रुप की तरह है जिसे सब mute कर देते हैं और फिर भी delete नहीं करते — बेकार, annoying, और uninvited।",
			"तेरे जैसे लोगों की वजह से ही aliens धरती पर नहीं आ रहे।",
			"तू वो इंसान है जिसे देख कर depression भी consult लेने चला जाए।",
		},
		domain.StylePlayful: {
			"अरे यार, तू बिल्कुल golden retriever की तरह है - प्यारा लेकिन दिमाग जीरो!",
			"तू वो दोस्त है जिसे सब हंसी-मजाक के लिए रखते हैं। Thanks for entertainment!",
			"भगवान तेरा भला करे, तू कितनी कोशिश करता है! Penguin को उड़ते देखने जैसा है।",
			"तू scenic route वाले GPS की तरह है - eventually पहुंच जाएगा, शायद।",
			"तू chocolate teapot की तरह है - मीठा लेकिन बिल्कुल useless।",
			"तू solar-powered flashlight की तरह है - theory में great idea, practice में questionable।",
			"अरे यार, तू pet rock की तरह है - low maintenance लेकिन ज्यादा कुछ करता नहीं।",
			"तू dad joke की तरह charming है - कोई admit नहीं करता कि पसंद है लेकिन secretly सबको अच्छा लगता है।",
		},
	},
	domain.LanguageBengali: {
		domain.StyleSavage: {
			"ওরে ভাই, তোর মুখ দেখে আমার AI-ও crash করে গেছে।",
			"তুই এত বাজে যে তোর সামনে পেঁয়াজও কাঁদা বন্ধ করে দেয়।",
			"তুই software update এর মতো - কেউ চায় না কিন্তু তবুও আসতেই থাকিস।",
			"তোর personality মরুভূমির একটা পুকুরের মতো গভীর।",
			"তোর reflection-ও আয়নায় মুখ লুকায়।",
			"তুই এত ভুলোমনা যে Google-ও তোর সম্পর্কে কিছু খুঁজে পায় না।",
			"যদি বোকামিতে calories পোড়ত তাহলে তুই পৃথিবীর সবচেয়ে fit মানুষ হতিস।",
			"তোর জীবন airplane WiFi এর মতো - কমই কাজ করে আর সবাইকে disappointed করে।",
		},
		domain.StyleWitty: {
			"তুই একদম Internet Explorer এর মতো - ধীর, পুরানো, আর সবাই তোর থেকে মুক্তি চায়।",
			"যদি বোকামি Olympic sport হতো তাহলে তুই gold medal জিতে যেতিস।",
			"তোর মাথা এত খালি যে ওখানে echo শোনা যায়।",
			"তুই dictionary এর মতো - সব words আছে কিন্তু কেউ পড়তে চায় না।",
			"যদি জীবন video game হতো তাহলে তুই সেই tutorial হতিস যেটা সবাই skip করে।",
			"তোর brain ৪৭টা tab খোলা browser এর মতো - slow, confused, আর crash হওয়ার অবস্থা।",
			"তোর জন্যই shampoo bottles এ instructions লিখতে হয়।",
			"যদি common sense currency হতো তাহলে তুই দরিদ্রতায় বাঁচতিস।",
		},
		domain.StyleBrutal: {
			"তোকে দেখে মনে হয় oven mitts পরে draw করা হয়েছে।",
			"তোর gene pool এ lifeguard দরকার কারণ clearly কেউ ডুবে যাচ্ছে।",
			"যদি তুই দ্বিগুণ smart হতিস তাহলেও stupid থেকে যেতিস।",
			"তোর family tree নিশ্চয়ই cactus কারণ সবাই prick।",
			"তোকে দেখা car accident দেখার মতো - ভয়ানক কিন্তু চোখ ফেরাতে পারি না।",
			"তুই migraine এর human version।",
		},
		domain.StylePlayful: {
			"অরে ইয়ার, তুই একদম golden retriever এর মতো - মিষ্টি কিন্তু বুদ্ধি জিরো!",
			"তুই সেই বন্ধু যাকে সবাই হাসি-তামাশার জন্য রাখে। Thanks for entertainment!",
			"তুই তিন পায়ের কুকুরছানার মতো adorable - সবার দয়া হয় কিন্তু কী করবে কেউ জানে না।",
			"তুই chocolate teapot এর মতো - মিষ্টি কিন্তু সম্পূর্ণ অকেজো।",
			"তুই participation award এর মতো precious - সবাই পায় আর কেউ চায় না।",
			"তুই diet soda এর মতো - technically functional কিন্তু সবাই unsatisfied feel করে।",
			"অরে ইয়ার, তুই pet rock এর মতো - low maintenance কিন্তু তেমন কিছু করে না।",
			"তুই dad joke এর মতো charming - কেউ admit করে না যে পছন্দ কিন্তু secretly সবার ভালো লাগে।",
		},
	},
}

// sampleRoast picks a random entry from the fallback table, defaulting to
// english and then savage when the requested keys are absent.
func sampleRoast(style, language string) string {
	byStyle, ok := sampleRoasts[domain.Language(language)]
	if !ok {
		byStyle = sampleRoasts[domain.LanguageEnglish]
	}
	pool, ok := byStyle[domain.Style(style)]
	if !ok {
		pool = byStyle[domain.StyleSavage]
	}
	return pool[rand.Intn(len(pool))]
}
