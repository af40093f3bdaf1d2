package embedargs

// KeyDoc describes one recognized key for help output.
type KeyDoc struct {
	Key         string
	Description string
}

// HelpIntro is the text shown above the key list. Format it with the
// command prefix as the only operand.
const HelpIntro = "Comandos: `%[1]ssay texto` y `%[1]sembed argumento=\"valor\"`\n" +
	"Todos los argumentos para el `%[1]sembed` deben estar entre comillas dobles (`\"`) o simples (`'`).\n" +
	"Todos los argumentos son opcionales pero al menos uno debe ser especificado. " +
	"Para añadir un *field* se usa `\"nombre del field\"=\"valor del field\"`.\n" +
	"Si se necesita usar un field con el nombre de un argumento, simplemente agreguele un espacio: `\"title \"=\"valor\"`.\n" +
	"A continuación se listan los argumentos para el comando `%[1]sembed`:"

// KeyHelp lists the recognized keys in the order they are shown to users.
var KeyHelp = []KeyDoc{
	{KeyTitle, "El título del embed"},
	{KeyDescription, "La descripción del embed"},
	{KeyURL, "Convierte al título en un link, debe ser una URL válida como por ejemplo https://google.com"},
	{KeyColor, "Color del embed, puede estar en hexadecimal (como `#FFFFFF`) o en rgb (como `255,0,0`)"},
	{KeyAuthorName, "Nombre del autor, se muestra en la parte de arriba del embed"},
	{KeyAuthorIcon, "Agrega una imagen al `author`"},
	{KeyAuthorURL, "Convierte al `author` en un link, parecido al argumento url"},
	{KeyImage, "Agrega una imagen al embed, debe ser una url válida"},
	{KeyThumbnail, "Agrega una imágen a la derecha del embed, debe ser una url válida"},
	{KeyFooterText, "Agrega un texto al final del embed"},
	{KeyFooterIcon, "Agrega una imagen al footer"},
}
