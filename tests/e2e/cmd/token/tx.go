package token

func CreateTransferCmd(from, to, amount string) []string {
	return []string{
		"gravityd",
		"token",
		"transfer",
		to,
		amount,
		"--from=" + from,
	}
}

func CreateAddDeployerCmd(from, deployer string) []string {
	return []string{
		"gravityd",
		"token",
		"add-deployer",
		deployer,
		"--from=" + from,
	}
}
