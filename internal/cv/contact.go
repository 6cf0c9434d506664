package cv

// Contact collects phone numbers and emails from the whole text. Phone
// matches from overlapping patterns are all kept. At most one LinkedIn and
// one portfolio URL are returned.
func (e *Extractor) Contact(text string) ContactInfo {
	rules := e.lib.Contact()

	info := ContactInfo{
		PhoneNumbers: []string{},
		Emails:       []string{},
	}
	for _, p := range rules.Phones {
		info.PhoneNumbers = append(info.PhoneNumbers, p.FindAll(text)...)
	}
	info.Emails = append(info.Emails, rules.Email.FindAll(text)...)

	if m := rules.LinkedIn.Find(text); m != "" {
		info.LinkedInURL = ptr(m)
	}
	if m := rules.Portfolio.Find(text); m != "" {
		info.PortfolioURL = ptr(m)
	}
	return info
}
