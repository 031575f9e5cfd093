package cli

var SplitFirstWord = splitFirstWord
