package worldgen

// Countries seeded into a new world, in generation order.
var countries = []string{
	"England",
	"Spain",
	"Germany",
	"Brazil",
	"Argentina",
	"Portugal",
}

var clubPrefixes = []string{
	"Real", "Atletico", "Sporting", "United", "Dynamo", "Racing",
	"Union", "Inter", "Olympic", "Academica",
}

var clubCores = []string{
	"Alderton", "Bravoro", "Calheira", "Delamar", "Eastvale", "Ferreira",
	"Granholt", "Hartville", "Istria", "Jacaranda", "Kestrel", "Lindenau",
	"Miravalle", "Norwood", "Oliveira", "Pietrapolis", "Quembro", "Riverton",
	"Santa Clara", "Tormes", "Ullswater", "Vilanova", "Westmoor", "Ybarra",
	"Zestafen", "Almadora", "Brockhurst", "Cormarino", "Drentwood", "Esperanza",
}

var clubSuffixes = []string{
	"FC", "CF", "SC", "AFC", "Athletic", "Rovers", "Town", "City",
}

var leagueAdjectives = []string{
	"Premier", "National", "Continental", "Northern", "Metropolitan", "Royal",
}

var hiddenLeagueNames = []string{
	"Regional Amateur Division", "Island League", "Workers' League",
	"Provincial Second Tier", "Coastal Association League", "Valley League",
}

var firstNames = []string{
	"Adam", "Bruno", "Carlos", "Diego", "Emil", "Felipe", "Gustavo", "Henrik",
	"Iker", "Joao", "Kai", "Lucas", "Mateo", "Nico", "Otavio", "Pablo",
	"Rafael", "Santiago", "Thiago", "Unai", "Victor", "Wesley", "Xavi", "Yuri",
	"Andre", "Bernardo", "Cristian", "Dominik", "Enzo", "Fabio", "Gabriel",
	"Hugo", "Ivan", "Julian", "Kevin", "Leon", "Marco", "Nathan", "Oscar",
	"Pedro", "Ruben", "Sergio", "Tomas", "Vinicius", "William",
}

var lastNames = []string{
	"Almeida", "Bauer", "Costa", "Dominguez", "Evans", "Fernandez", "Gomes",
	"Hoffmann", "Ibanez", "Jimenez", "Keller", "Lopes", "Martins", "Navarro",
	"Oliveira", "Pereira", "Quintana", "Ribeiro", "Santos", "Torres",
	"Urquiza", "Vargas", "Wagner", "Ximenes", "Zimmermann", "Andrade",
	"Becker", "Cardoso", "Duarte", "Esteves", "Ferraro", "Gutierrez",
	"Herrera", "Iglesias", "Juarez", "Klein", "Lemos", "Moreno", "Nunes",
	"Ortega", "Pinto", "Ramos", "Silva", "Teixeira", "Vieira", "Weber",
}

var scoutNames = []string{
	"Alex Mercer", "Sam Okafor", "Jordan Hale", "Casey Lindqvist",
	"Robin Castellano", "Morgan Reyes",
}
