// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/terminal-games/flix/cmd/flix/profilelist"
	"github.com/terminal-games/flix/cmd/flix/tabs"
	"github.com/terminal-games/flix/cmd/flix/titlerow"
)

type textKey string

const (
	textBrand          textKey = "brand"
	textWindowTooSmall textKey = "window.tooSmall"

	textHelpQuit    textKey = "help.quit"
	textHelpNextTab textKey = "help.nextTab"
	textHelpPrevTab textKey = "help.prevTab"
	textHelpUp      textKey = "help.up"
	textHelpDown    textKey = "help.down"
	textHelpRows    textKey = "help.rows"
	textHelpScroll  textKey = "help.scroll"
	textHelpSearch  textKey = "help.search"
	textHelpMenu    textKey = "help.menu"
	textHelpPlay    textKey = "help.play"
	textHelpEdit    textKey = "help.edit"
	textHelpDelete  textKey = "help.delete"
	textHelpAdd     textKey = "help.add"
	textHelpSave    textKey = "help.save"
	textHelpCancel  textKey = "help.cancel"
	textHelpBack    textKey = "help.back"
	textHelpToggle  textKey = "help.toggle"
	textHelpClose   textKey = "help.close"

	textMenuAccount    textKey = "menu.account"
	textMenuHelpCenter textKey = "menu.helpCenter"
	textMenuSignOut    textKey = "menu.signOut"
	textNoNotices      textKey = "notices.empty"
	textNotAvailable   textKey = "notice.notAvailable"
	textSignedOut      textKey = "notice.signedOut"
	textNowPlaying     textKey = "notice.nowPlaying"

	textSearchPlaceholder textKey = "search.placeholder"
	textSearchNoMatch     textKey = "search.noMatch"
	textPlay              textKey = "hero.play"
	textMoreInfo          textKey = "hero.moreInfo"
	textInfo              textKey = "card.info"
	textRowTrending       textKey = "row.trending"
	textRowPopular        textKey = "row.popular"
	textRowNew            textKey = "row.new"
	textCopyright         textKey = "footer.copyright"

	textBack            textKey = "account.back"
	textAccountSettings textKey = "account.settings"
	textTabProfiles     textKey = "tab.profiles"
	textTabProfilesS    textKey = "tab.profiles.short"
	textTabAccount      textKey = "tab.account"
	textTabAccountS     textKey = "tab.account.short"
	textTabBilling      textKey = "tab.billing"
	textTabBillingS     textKey = "tab.billing.short"
	textTabSecurity     textKey = "tab.security"
	textTabSecurityS    textKey = "tab.security.short"

	textAllMaturity     textKey = "profiles.allMaturity"
	textProfilesCount   textKey = "profiles.count"
	textAddProfile      textKey = "profiles.add"
	textProfilePrompt   textKey = "profiles.placeholder"
	textAddButton       textKey = "profiles.addButton"
	textRosterFullHint  textKey = "profiles.fullHint"
	textNoProfiles      textKey = "profiles.none"
	textProfileAdded    textKey = "profiles.added"
	textProfileRenamed  textKey = "profiles.renamed"
	textProfileRemoved  textKey = "profiles.removed"
	textErrEmptyName    textKey = "error.emptyName"
	textErrRosterFull   textKey = "error.rosterFull"
	textErrNotFound     textKey = "error.notFound"
	textErrDisplayName  textKey = "error.displayName"
	textErrEmail        textKey = "error.email"
	textErrUnknown      textKey = "error.unknown"
	textDetailsSaved    textKey = "details.saved"
	textLabelName       textKey = "details.name"
	textLabelEmail      textKey = "details.email"
	textLabelPlan       textKey = "details.plan"
	textPlanName        textKey = "details.planName"
	textEnterToEdit     textKey = "details.enterToEdit"
	textBillingPlan     textKey = "billing.plan"
	textBillingQuality  textKey = "billing.quality"
	textBillingPrice    textKey = "billing.price"
	textBillingNext     textKey = "billing.next"
	textPaymentMethod   textKey = "billing.paymentMethod"
	textCardExpires     textKey = "billing.expires"
	textUpdatePayment   textKey = "billing.update"
	textPasswordSection textKey = "security.password"
	textChangePassword  textKey = "security.changePassword"
	textTwoFactor       textKey = "security.twoFactor"
	textSignOutAll      textKey = "security.signOutAll"
	textNotifications   textKey = "security.notifications"
	textNotifyReleases  textKey = "security.notifyReleases"
	textNotifySMS       textKey = "security.notifySMS"
	textNotifyMarketing textKey = "security.notifyMarketing"
)

var english = map[textKey]string{
	textBrand:          "NETFLIX",
	textWindowTooSmall: "Window must be larger",

	textHelpQuit:    "quit",
	textHelpNextTab: "next tab",
	textHelpPrevTab: "prev tab",
	textHelpUp:      "up",
	textHelpDown:    "down",
	textHelpRows:    "rows",
	textHelpScroll:  "scroll",
	textHelpSearch:  "search",
	textHelpMenu:    "menu",
	textHelpPlay:    "play",
	textHelpEdit:    "edit",
	textHelpDelete:  "delete",
	textHelpAdd:     "add profile",
	textHelpSave:    "save",
	textHelpCancel:  "cancel",
	textHelpBack:    "back",
	textHelpToggle:  "toggle",
	textHelpClose:   "close",

	textMenuAccount:    "Account",
	textMenuHelpCenter: "Help Center",
	textMenuSignOut:    "Sign out",
	textNoNotices:      "No new notifications",
	textNotAvailable:   "%s is not available here",
	textSignedOut:      "Signed out. Press q to quit.",
	textNowPlaying:     "Playback of %s is not available here",

	textSearchPlaceholder: "Titles, descriptions",
	textSearchNoMatch:     "No titles match %q.",
	textPlay:              "Play",
	textMoreInfo:          "More Info",
	textInfo:              "Info",
	textRowTrending:       "Trending Now",
	textRowPopular:        "Popular on Netflix",
	textRowNew:            "New Releases",
	textCopyright:         "© 2024 Netflix Clone. All rights reserved.",

	textBack:            "‹ Back",
	textAccountSettings: "Account Settings",
	textTabProfiles:     "Profiles & Parental Controls",
	textTabProfilesS:    "Profiles",
	textTabAccount:      "Account Details",
	textTabAccountS:     "Account",
	textTabBilling:      "Billing Details",
	textTabBillingS:     "Billing",
	textTabSecurity:     "Security & Privacy",
	textTabSecurityS:    "Security",

	textAllMaturity:     "All Maturity Ratings",
	textProfilesCount:   "%d of %d profiles",
	textAddProfile:      "Add Profile",
	textProfilePrompt:   "Enter profile name",
	textAddButton:       "Add",
	textRosterFullHint:  "You have reached the maximum of %d profiles.",
	textNoProfiles:      "No profiles yet.",
	textProfileAdded:    "Added %s",
	textProfileRenamed:  "Renamed to %s",
	textProfileRemoved:  "Profile removed",
	textErrEmptyName:    "Profile name can't be empty",
	textErrRosterFull:   "You can have up to %d profiles",
	textErrNotFound:     "That profile no longer exists",
	textErrDisplayName:  "Name can't be empty",
	textErrEmail:        "Please enter a valid email address",
	textErrUnknown:      "Something went wrong",
	textDetailsSaved:    "Saved",
	textLabelName:       "Name",
	textLabelEmail:      "Email",
	textLabelPlan:       "Plan",
	textPlanName:        "%s Plan",
	textEnterToEdit:     "enter to edit",
	textBillingPlan:     "Netflix %s",
	textBillingQuality:  "Ultra HD + HDR",
	textBillingPrice:    "$19.99/month",
	textBillingNext:     "Next billing: Jan 15, 2024",
	textPaymentMethod:   "Payment Method",
	textCardExpires:     "Expires 12/2025",
	textUpdatePayment:   "Update Payment Method",
	textPasswordSection: "Password & Security",
	textChangePassword:  "Change Password",
	textTwoFactor:       "Two-Factor Authentication",
	textSignOutAll:      "Sign Out of All Devices",
	textNotifications:   "Notifications",
	textNotifyReleases:  "Email notifications about new releases",
	textNotifySMS:       "SMS notifications for account activity",
	textNotifyMarketing: "Marketing communications",
}

var german = map[textKey]string{
	textBrand:          "NETFLIX",
	textWindowTooSmall: "Fenster ist zu klein",

	textHelpQuit:    "beenden",
	textHelpNextTab: "nächster Tab",
	textHelpPrevTab: "voriger Tab",
	textHelpUp:      "hoch",
	textHelpDown:    "runter",
	textHelpRows:    "reihen",
	textHelpScroll:  "blättern",
	textHelpSearch:  "suchen",
	textHelpMenu:    "menü",
	textHelpPlay:    "abspielen",
	textHelpEdit:    "bearbeiten",
	textHelpDelete:  "löschen",
	textHelpAdd:     "profil hinzufügen",
	textHelpSave:    "speichern",
	textHelpCancel:  "abbrechen",
	textHelpBack:    "zurück",
	textHelpToggle:  "umschalten",
	textHelpClose:   "schließen",

	textMenuAccount:    "Konto",
	textMenuHelpCenter: "Hilfe-Center",
	textMenuSignOut:    "Abmelden",
	textNoNotices:      "Keine neuen Benachrichtigungen",
	textNotAvailable:   "%s ist hier nicht verfügbar",
	textSignedOut:      "Abgemeldet. q zum Beenden.",
	textNowPlaying:     "Wiedergabe von %s ist hier nicht verfügbar",

	textSearchPlaceholder: "Titel, Beschreibungen",
	textSearchNoMatch:     "Keine Titel passen zu %q.",
	textPlay:              "Abspielen",
	textMoreInfo:          "Weitere Infos",
	textInfo:              "Infos",
	textRowTrending:       "Aktuell beliebt",
	textRowPopular:        "Beliebt auf Netflix",
	textRowNew:            "Neuerscheinungen",
	textCopyright:         "© 2024 Netflix Clone. Alle Rechte vorbehalten.",

	textBack:            "‹ Zurück",
	textAccountSettings: "Kontoeinstellungen",
	textTabProfiles:     "Profile & Jugendschutz",
	textTabProfilesS:    "Profile",
	textTabAccount:      "Kontodaten",
	textTabAccountS:     "Konto",
	textTabBilling:      "Zahlungsdetails",
	textTabBillingS:     "Zahlung",
	textTabSecurity:     "Sicherheit & Datenschutz",
	textTabSecurityS:    "Sicherheit",

	textAllMaturity:     "Alle Altersfreigaben",
	textProfilesCount:   "%d von %d Profilen",
	textAddProfile:      "Profil hinzufügen",
	textProfilePrompt:   "Profilnamen eingeben",
	textAddButton:       "Hinzufügen",
	textRosterFullHint:  "Du hast die Höchstzahl von %d Profilen erreicht.",
	textNoProfiles:      "Noch keine Profile.",
	textProfileAdded:    "%s hinzugefügt",
	textProfileRenamed:  "Umbenannt in %s",
	textProfileRemoved:  "Profil gelöscht",
	textErrEmptyName:    "Der Profilname darf nicht leer sein",
	textErrRosterFull:   "Es sind höchstens %d Profile möglich",
	textErrNotFound:     "Dieses Profil existiert nicht mehr",
	textErrDisplayName:  "Der Name darf nicht leer sein",
	textErrEmail:        "Bitte gib eine gültige E-Mail-Adresse ein",
	textErrUnknown:      "Etwas ist schiefgelaufen",
	textDetailsSaved:    "Gespeichert",
	textLabelName:       "Name",
	textLabelEmail:      "E-Mail",
	textLabelPlan:       "Abo",
	textPlanName:        "%s-Abo",
	textEnterToEdit:     "enter zum Bearbeiten",
	textBillingPlan:     "Netflix %s",
	textBillingQuality:  "Ultra HD + HDR",
	textBillingPrice:    "19,99 $/Monat",
	textBillingNext:     "Nächste Abrechnung: 15. Jan. 2024",
	textPaymentMethod:   "Zahlungsmethode",
	textCardExpires:     "Gültig bis 12/2025",
	textUpdatePayment:   "Zahlungsmethode ändern",
	textPasswordSection: "Passwort & Sicherheit",
	textChangePassword:  "Passwort ändern",
	textTwoFactor:       "Zwei-Faktor-Authentifizierung",
	textSignOutAll:      "Von allen Geräten abmelden",
	textNotifications:   "Benachrichtigungen",
	textNotifyReleases:  "E-Mails zu Neuerscheinungen",
	textNotifySMS:       "SMS zu Kontoaktivitäten",
	textNotifyMarketing: "Marketing-Mitteilungen",
}

var supportedLanguages = []language.Tag{
	language.English,
	language.German,
}

type localizer struct {
	matcher language.Matcher
	tag     language.Tag
}

func newLocalizer(lang string) localizer {
	l := localizer{
		matcher: language.NewMatcher(supportedLanguages),
		tag:     language.English,
	}
	if tag, err := language.Parse(lang); err == nil {
		l.SetPreferred([]language.Tag{tag})
	}
	return l
}

// SetPreferred picks the closest supported language and reports whether it
// changed.
func (l *localizer) SetPreferred(preferred []language.Tag) bool {
	next := language.English
	if len(preferred) > 0 {
		_, index, confidence := l.matcher.Match(preferred...)
		if confidence != language.No {
			next = supportedLanguages[index]
		}
	}
	if next == l.tag {
		return false
	}
	l.tag = next
	return true
}

func (l localizer) Text(key textKey) string {
	if l.tag == language.German {
		if s, ok := german[key]; ok {
			return s
		}
	}
	if s, ok := english[key]; ok {
		return s
	}
	return string(key)
}

func (l localizer) Textf(key textKey, args ...any) string {
	return fmt.Sprintf(l.Text(key), args...)
}

func (l localizer) RowHeading(rowKey, fallback string) string {
	switch rowKey {
	case "trending":
		return l.Text(textRowTrending)
	case "popular":
		return l.Text(textRowPopular)
	case "new":
		return l.Text(textRowNew)
	}
	return fallback
}

func (l localizer) TitleRowLabels() titlerow.Labels {
	return titlerow.Labels{
		Play: l.Text(textPlay),
		Info: l.Text(textInfo),
	}
}

func (l localizer) ProfileListLabels() profilelist.Labels {
	return profilelist.Labels{
		Edit:   l.Text(textHelpEdit),
		Delete: l.Text(textHelpDelete),
		Up:     l.Text(textHelpUp),
		Down:   l.Text(textHelpDown),
	}
}

func (l localizer) AccountTabs() []tabs.Tab {
	return []tabs.Tab{
		{ID: tabProfiles, Title: l.Text(textTabProfiles), Short: l.Text(textTabProfilesS)},
		{ID: tabAccount, Title: l.Text(textTabAccount), Short: l.Text(textTabAccountS)},
		{ID: tabBilling, Title: l.Text(textTabBilling), Short: l.Text(textTabBillingS)},
		{ID: tabSecurity, Title: l.Text(textTabSecurity), Short: l.Text(textTabSecurityS)},
	}
}
