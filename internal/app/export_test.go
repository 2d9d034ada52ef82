package app

// CommonRootExported exports commonRoot for testing.
func CommonRootExported(a, b string) string {
	return commonRoot(a, b)
}
