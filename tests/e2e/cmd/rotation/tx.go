package rotation

import "fmt"

func CreateNewCmd(kind, round, out string, members ...string) []string {
	cmd := []string{
		"gravityd",
		"rotation",
		"new",
		kind,
		round,
	}
	cmd = append(cmd, members...)
	return append(cmd, "--out="+out)
}

func CreateSignCmd(file string, keyIndex uint32, slot int) []string {
	return []string{
		"gravityd",
		"rotation",
		"sign",
		file,
		fmt.Sprintf("--key-index=%d", keyIndex),
		fmt.Sprintf("--slot=%d", slot),
	}
}

func CreateRotateCmd(module, file string) []string {
	return []string{
		"gravityd",
		module,
		"rotate",
		file,
	}
}
