package catalog

var builtin = map[Category][]Item{
	Animals: {
		{ID: 1, Name: "Dog", Sound: "/sounds/animals/dog.mp3", Emoji: "🐕", Color: "bg-amber-100", Description: "Dogs bark to communicate"},
		{ID: 2, Name: "Cat", Sound: "/sounds/animals/cat.mp3", Emoji: "🐱", Color: "bg-orange-100", Description: "Cats meow when they want attention"},
		{ID: 3, Name: "Bird", Sound: "/sounds/animals/bird.mp3", Emoji: "🐦", Color: "bg-blue-100", Description: "Birds sing beautiful songs"},
		{ID: 4, Name: "Cow", Sound: "/sounds/animals/cow.mp3", Emoji: "🐄", Color: "bg-green-100", Description: "Cows moo on the farm"},
		{ID: 5, Name: "Sheep", Sound: "/sounds/animals/sheep.mp3", Emoji: "🐑", Color: "bg-gray-100", Description: "Sheep bleat in the fields"},
		{ID: 6, Name: "Horse", Sound: "/sounds/animals/horse.mp3", Emoji: "🐴", Color: "bg-yellow-100", Description: "Horses neigh and gallop"},
	},
	Vehicles: {
		{ID: 7, Name: "Car", Sound: "/sounds/vehicles/car.mp3", Emoji: "🚗", Color: "bg-red-100", Description: "Cars drive on roads"},
		{ID: 8, Name: "Train", Sound: "/sounds/vehicles/train.mp3", Emoji: "🚂", Color: "bg-gray-200", Description: "Trains run on tracks"},
		{ID: 9, Name: "Airplane", Sound: "/sounds/vehicles/airplane.mp3", Emoji: "✈️", Color: "bg-sky-100", Description: "Airplanes fly in the sky"},
		{ID: 10, Name: "Boat", Sound: "/sounds/vehicles/boat.mp3", Emoji: "⛵", Color: "bg-blue-200", Description: "Boats sail on water"},
		{ID: 11, Name: "Motorcycle", Sound: "/sounds/vehicles/motorcycle.mp3", Emoji: "🏍️", Color: "bg-orange-200", Description: "Motorcycles are fast"},
		{ID: 12, Name: "Ambulance", Sound: "/sounds/vehicles/ambulance.mp3", Emoji: "🚑", Color: "bg-red-200", Description: "Ambulances help people"},
	},
	Nature: {
		{ID: 13, Name: "Rain", Sound: "/sounds/nature/rain.mp3", Emoji: "🌧️", Color: "bg-blue-100", Description: "Rain falls from clouds"},
		{ID: 14, Name: "Thunder", Sound: "/sounds/nature/thunder.mp3", Emoji: "⛈️", Color: "bg-gray-300", Description: "Thunder comes with lightning"},
		{ID: 15, Name: "Wind", Sound: "/sounds/nature/wind.mp3", Emoji: "💨", Color: "bg-cyan-100", Description: "Wind blows through the air"},
		{ID: 16, Name: "Ocean Waves", Sound: "/sounds/nature/waves.mp3", Emoji: "🌊", Color: "bg-blue-200", Description: "Waves crash on the beach"},
		{ID: 17, Name: "Fire", Sound: "/sounds/nature/fire.mp3", Emoji: "🔥", Color: "bg-orange-100", Description: "Fire crackles and burns"},
		{ID: 18, Name: "Bee", Sound: "/sounds/nature/bee.mp3", Emoji: "🐝", Color: "bg-yellow-200", Description: "Bees buzz around flowers"},
	},
	Household: {
		{ID: 19, Name: "Doorbell", Sound: "/sounds/household/doorbell.mp3", Emoji: "🔔", Color: "bg-yellow-100", Description: "Doorbell rings when someone visits"},
		{ID: 20, Name: "Phone Ring", Sound: "/sounds/household/phone.mp3", Emoji: "📱", Color: "bg-green-100", Description: "Phone rings for calls"},
		{ID: 21, Name: "Clock", Sound: "/sounds/household/clock.mp3", Emoji: "⏰", Color: "bg-blue-100", Description: "Clocks tell us the time"},
		{ID: 22, Name: "Vacuum", Sound: "/sounds/household/vacuum.mp3", Emoji: "🧹", Color: "bg-purple-100", Description: "Vacuum cleans the floor"},
		{ID: 23, Name: "Microwave", Sound: "/sounds/household/microwave.mp3", Emoji: "📟", Color: "bg-gray-200", Description: "Microwave beeps when food is ready"},
		{ID: 24, Name: "Door Knock", Sound: "/sounds/household/door.mp3", Emoji: "🚪", Color: "bg-brown-100", Description: "Someone knocks on the door"},
	},
	Human: {
		{ID: 25, Name: "Laughing", Sound: "/sounds/human/laughing.mp3", Emoji: "😄", Color: "bg-yellow-100", Description: "People laugh when happy"},
		{ID: 26, Name: "Crying", Sound: "/sounds/human/crying.mp3", Emoji: "😢", Color: "bg-blue-100", Description: "People cry when sad"},
		{ID: 27, Name: "Sneezing", Sound: "/sounds/human/sneezing.mp3", Emoji: "🤧", Color: "bg-green-100", Description: "People sneeze when ticklish"},
		{ID: 28, Name: "Clapping", Sound: "/sounds/human/clap.mp3", Emoji: "👏", Color: "bg-pink-100", Description: "People clap to show appreciation"},
		{ID: 29, Name: "Coughing", Sound: "/sounds/human/coughing.mp3", Emoji: "😷", Color: "bg-red-100", Description: "People cough to clear throat"},
		{ID: 30, Name: "Baby Crying", Sound: "/sounds/human/baby.mp3", Emoji: "👶", Color: "bg-purple-100", Description: "Babies cry when they need something"},
	},
}
