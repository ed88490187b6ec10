package catalog

// seedEntries defines the starter concept knowledge base: 9 concepts
// across math, science, and programming, 3-5 items per list.
var seedEntries = []Entry{
	{
		ConceptID: "fractions",
		Subject:   "math",
		Tier:      TierBasic,
		GuidingQuestions: []string{
			"If you cut a pizza into 4 equal slices and eat 1, what fraction did you eat?",
			"Which is bigger: 1/2 or 1/3? How do you know?",
			"What does the bottom number of a fraction tell you?",
			"Can you show 3/4 by shading parts of a square?",
			"If two fractions have the same top number, how do you tell which is larger?",
		},
		Analogies: []string{
			"A fraction is like slicing a chocolate bar: the bottom number says how many pieces you made, the top says how many you took.",
			"Think of a fraction as sharing fairly: 1/4 means one person's share when four people split something equally.",
			"The denominator is like the number of lanes in a pool: more lanes means each lane is narrower.",
		},
		RealWorldExamples: []string{
			"Splitting a restaurant bill between three friends gives each person 1/3.",
			"A quarter coin is 1/4 of a dollar.",
			"A half-time show happens when 1/2 of the game is done.",
		},
		CommonMisconceptions: []string{
			"A bigger denominator means a bigger fraction.",
			"1/2 + 1/3 = 2/5 (adding tops and bottoms separately).",
			"Fractions are always less than one.",
		},
		VisualAids: []string{
			"Circle divided into equal sectors with some shaded",
			"Number line from 0 to 1 marked in quarters",
			"Two chocolate bars of equal size split into different counts",
		},
	},
	{
		ConceptID: "equivalent-fractions",
		Subject:   "math",
		Tier:      TierIntermediate,
		GuidingQuestions: []string{
			"Why do 1/2 and 2/4 name the same amount?",
			"How can you turn 3/4 into twelfths without changing its value?",
			"What do you multiply 2/3 by to get 8/12?",
			"Is 5/10 equivalent to 1/2? Show your reasoning.",
			"How many fractions are equivalent to 1/3?",
		},
		Analogies: []string{
			"Equivalent fractions are like exchanging one dollar for four quarters: the form changes, the value doesn't.",
			"Cutting each slice of a half-pizza in two gives smaller slices but the same pizza.",
			"Two maps at different zoom levels show the same city.",
		},
		RealWorldExamples: []string{
			"Half an hour and 30/60 of an hour are the same wait.",
			"A recipe calling for 2/4 cup of sugar needs exactly 1/2 cup.",
			"Scoring 50 out of 100 on a test is the same rate as 5 out of 10.",
		},
		CommonMisconceptions: []string{
			"Multiplying the numerator and denominator changes the fraction's value.",
			"Only one fraction can represent a given amount.",
			"Simplifying a fraction makes it smaller.",
		},
		VisualAids: []string{
			"Fraction wall comparing halves, quarters, and eighths",
			"Two identical rectangles shaded 1/2 and 2/4",
			"Pie chart overlay of 3/6 on 1/2",
		},
	},
	{
		ConceptID: "fraction-operations",
		Subject:   "math",
		Tier:      TierAdvanced,
		GuidingQuestions: []string{
			"Why do fractions need a common denominator before you add them?",
			"What happens to the size of a number when you multiply it by 1/2?",
			"Why does dividing by a fraction make the result bigger?",
			"How would you compute 2/3 of 3/4 and what does it mean?",
			"When is the product of two fractions larger than both factors?",
		},
		Analogies: []string{
			"Adding unlike fractions is like adding meters to feet: convert to a common unit first.",
			"Multiplying by a fraction is like taking a part of a part: a half of a half of a cake.",
			"Dividing by 1/4 asks how many quarter-cups fit in the bowl.",
		},
		RealWorldExamples: []string{
			"Doubling 3/4 cup of flour when scaling a recipe.",
			"Splitting 1/2 of the leftover pizza among 3 people gives each 1/6.",
			"A carpenter adding board lengths of 3/8 inch and 1/4 inch.",
		},
		CommonMisconceptions: []string{
			"Adding denominators when adding fractions.",
			"Multiplication always makes numbers bigger.",
			"To divide fractions you divide tops and bottoms separately.",
		},
		VisualAids: []string{
			"Area model of 2/3 × 3/4 on a unit square",
			"Measuring cups of different fraction sizes",
			"Bar model showing 1/2 ÷ 1/6 as six pieces",
		},
	},
	{
		ConceptID: "decimals",
		Subject:   "math",
		Tier:      TierBasic,
		GuidingQuestions: []string{
			"What does the digit after the decimal point represent?",
			"Which is larger: 0.5 or 0.45? Why?",
			"How would you write three tenths as a decimal?",
			"Where does 0.75 sit on a number line between 0 and 1?",
			"How are decimals and money related?",
		},
		Analogies: []string{
			"A decimal is like a street address: each position past the point is a more precise block.",
			"Tenths and hundredths are like dimes and pennies inside a dollar.",
			"The decimal point is a fence: whole things on the left, pieces on the right.",
		},
		RealWorldExamples: []string{
			"Prices like $3.99 use decimals for cents.",
			"A sprinter's time of 9.58 seconds.",
			"A thermometer reading 37.5 degrees.",
		},
		CommonMisconceptions: []string{
			"Longer decimals are always larger (0.125 > 0.5).",
			"0.5 and 0.50 are different amounts.",
			"The decimal point separates two unrelated numbers.",
		},
		VisualAids: []string{
			"Hundred-square grid with cells shaded for 0.37",
			"Number line zoomed between 0 and 1 in tenths",
			"Coins grouped as dollars, dimes, and pennies",
		},
	},
	{
		ConceptID: "photosynthesis",
		Subject:   "science",
		Tier:      TierIntermediate,
		GuidingQuestions: []string{
			"What three things does a plant need to make its own food?",
			"Where in the leaf does photosynthesis happen?",
			"What gas do plants give off during photosynthesis?",
			"Why do most leaves look green?",
			"What happens to a plant kept in a dark closet for a week?",
		},
		Analogies: []string{
			"A leaf is like a solar-powered kitchen: sunlight is the electricity, water and carbon dioxide are the ingredients.",
			"Chlorophyll is like an antenna tuned to catch sunlight.",
			"Photosynthesis is a factory assembly line turning raw materials into sugar.",
		},
		RealWorldExamples: []string{
			"Greenhouses boost growth by controlling light and carbon dioxide.",
			"Houseplants lean toward the window to catch more light.",
			"Algae blooms fill sunny ponds with oxygen bubbles.",
		},
		CommonMisconceptions: []string{
			"Plants get their food from the soil.",
			"Plants breathe in oxygen like animals do.",
			"Photosynthesis only happens on sunny days.",
		},
		VisualAids: []string{
			"Cross-section of a leaf showing chloroplasts",
			"Flow diagram: sunlight + water + CO2 → sugar + oxygen",
			"Time-lapse of a plant growing toward light",
		},
	},
	{
		ConceptID: "states-of-matter",
		Subject:   "science",
		Tier:      TierBasic,
		GuidingQuestions: []string{
			"What are the three common states of matter?",
			"What happens to ice when you warm it up?",
			"Why does a puddle disappear on a hot day?",
			"How do particles move differently in a solid versus a gas?",
			"Can the same substance exist in all three states?",
		},
		Analogies: []string{
			"Particles in a solid are like students seated in rows; in a liquid they mill around the hallway; in a gas they sprint across the playground.",
			"Melting is like a crowd loosening up when the music starts.",
			"A gas fills its container like noise fills a room.",
		},
		RealWorldExamples: []string{
			"Ice cubes melting in a drink.",
			"Steam rising from a boiling kettle.",
			"Fog forming on a cold morning.",
		},
		CommonMisconceptions: []string{
			"Gases weigh nothing.",
			"Evaporation means the water is gone forever.",
			"Solids can't change state without being heated by fire.",
		},
		VisualAids: []string{
			"Particle diagrams for solid, liquid, and gas",
			"Temperature curve of water from ice to steam",
			"Photo series of a melting ice sculpture",
		},
	},
	{
		ConceptID: "variables",
		Subject:   "programming",
		Tier:      TierBasic,
		GuidingQuestions: []string{
			"What is a variable for in a program?",
			"What happens to the old value when you assign a new one?",
			"Why do variables have names?",
			"What is the difference between a variable and the value inside it?",
			"Can two variables hold the same value at once?",
		},
		Analogies: []string{
			"A variable is a labeled box: the label stays, the contents can change.",
			"Assignment is like writing on a whiteboard: the new note replaces the old.",
			"A variable name is a nickname the program uses to find a value later.",
		},
		RealWorldExamples: []string{
			"A scoreboard keeping the current score of a game.",
			"A thermostat storing the target temperature.",
			"A shopping cart total that updates as items are added.",
		},
		CommonMisconceptions: []string{
			"A variable can hold several values at the same time.",
			"Assignment works both directions, like an equation.",
			"Renaming a variable changes its value.",
		},
		VisualAids: []string{
			"Labeled boxes with values being swapped",
			"Trace table of a variable changing across steps",
			"Diagram of a name pointing at a value",
		},
	},
	{
		ConceptID: "loops",
		Subject:   "programming",
		Tier:      TierIntermediate,
		GuidingQuestions: []string{
			"When would you use a loop instead of copying code?",
			"What decides when a loop stops?",
			"What happens if a loop's condition never becomes false?",
			"How does a loop counter change each time around?",
			"How many times does a loop from 1 to 10 run?",
		},
		Analogies: []string{
			"A loop is like laps around a track: same path, counted repetitions.",
			"The loop condition is a gatekeeper deciding whether you go around again.",
			"An infinite loop is a revolving door you never step out of.",
		},
		RealWorldExamples: []string{
			"A washing machine repeating its spin cycle a set number of times.",
			"A playlist repeating until you press stop.",
			"A robot vacuum passing over each row of the floor.",
		},
		CommonMisconceptions: []string{
			"The loop body runs once more after the condition turns false.",
			"Changing the counter inside the body has no effect.",
			"Loops always run at least once.",
		},
		VisualAids: []string{
			"Flowchart with a condition diamond and a back edge",
			"Trace table of counter values per iteration",
			"Animation of a repeated drawing command",
		},
	},
	{
		ConceptID: "recursion",
		Subject:   "programming",
		Tier:      TierAdvanced,
		GuidingQuestions: []string{
			"What two parts must every recursive function have?",
			"What happens if a recursive function has no base case?",
			"How does recursion break a big problem into smaller ones?",
			"How would you define a factorial recursively?",
			"When is a loop simpler than recursion?",
		},
		Analogies: []string{
			"Recursion is like standing between two mirrors: each reflection holds a smaller copy of the scene.",
			"Russian nesting dolls: open one and a smaller version of the same doll is inside, until the smallest solid one (the base case).",
			"Asking the person in front of you in a queue what position they are in, all the way to the front.",
		},
		RealWorldExamples: []string{
			"File systems where folders contain folders.",
			"Family trees tracing ancestors of ancestors.",
			"Fractal patterns in snowflakes and ferns.",
		},
		CommonMisconceptions: []string{
			"Recursion and loops cannot compute the same things.",
			"The base case runs first.",
			"Each recursive call keeps its own copy of the whole program.",
		},
		VisualAids: []string{
			"Call-stack diagram for factorial(4)",
			"Nesting dolls labeled with shrinking inputs",
			"Tree diagram of recursive calls",
		},
	},
}

func init() {
	built, err := buildCatalog(seedEntries)
	if err != nil {
		panic("catalog: invalid seed data: " + err.Error())
	}
	c = built
}
