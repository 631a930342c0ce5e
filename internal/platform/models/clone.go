package models

import "github.com/crewjam/saml"

// Deep-copy helpers backing editor-session snapshots. Every mutable field is
// copied so that editing a clone never leaks into the original.

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneStringMap(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// Clone returns a deep copy of the aggregate.
func (c TenantPlexConfig) Clone() TenantPlexConfig {
	out := c
	out.TenantConfig = c.TenantConfig.Clone()
	return out
}

func (tc TenantConfig) Clone() TenantConfig {
	out := tc
	out.PlexMap = tc.PlexMap.Clone()
	out.OIDCProviders = tc.OIDCProviders.Clone()
	out.ExternalOIDCIssuers = cloneStrings(tc.ExternalOIDCIssuers)
	out.PageParameters = tc.PageParameters.Clone()
	return out
}

func (m PlexMap) Clone() PlexMap {
	out := m
	if m.Providers != nil {
		out.Providers = make([]Provider, len(m.Providers))
		for i, p := range m.Providers {
			out.Providers[i] = p.Clone()
		}
	}
	if m.Apps != nil {
		out.Apps = make([]LoginApp, len(m.Apps))
		for i, a := range m.Apps {
			out.Apps[i] = a.Clone()
		}
	}
	if m.EmployeeApp != nil {
		ea := m.EmployeeApp.Clone()
		out.EmployeeApp = &ea
	}
	out.TelephonyProvider = m.TelephonyProvider.Clone()
	return out
}

func (p Provider) Clone() Provider {
	out := p
	if p.Auth0 != nil {
		a := *p.Auth0
		if p.Auth0.Apps != nil {
			a.Apps = make([]Auth0App, len(p.Auth0.Apps))
			copy(a.Apps, p.Auth0.Apps)
		}
		out.Auth0 = &a
	}
	if p.UC != nil {
		u := *p.UC
		if p.UC.Apps != nil {
			u.Apps = make([]UCApp, len(p.UC.Apps))
			copy(u.Apps, p.UC.Apps)
		}
		out.UC = &u
	}
	if p.Cognito != nil {
		cg := *p.Cognito
		if p.Cognito.Apps != nil {
			cg.Apps = make([]CognitoApp, len(p.Cognito.Apps))
			copy(cg.Apps, p.Cognito.Apps)
		}
		out.Cognito = &cg
	}
	return out
}

func (a LoginApp) Clone() LoginApp {
	out := a
	out.ProviderAppIDs = cloneStrings(a.ProviderAppIDs)
	out.AllowedRedirectURIs = cloneStrings(a.AllowedRedirectURIs)
	out.AllowedLogoutURIs = cloneStrings(a.AllowedLogoutURIs)
	out.GrantTypes = cloneStrings(a.GrantTypes)
	out.MessageElements = a.MessageElements.Clone()
	out.PageParameters = a.PageParameters.Clone()
	if a.SAMLIDP != nil {
		s := a.SAMLIDP.Clone()
		out.SAMLIDP = &s
	}
	return out
}

func (s SAMLIDP) Clone() SAMLIDP {
	out := s
	if s.TrustedServiceProviders != nil {
		out.TrustedServiceProviders = make([]saml.EntityDescriptor, len(s.TrustedServiceProviders))
		copy(out.TrustedServiceProviders, s.TrustedServiceProviders)
	}
	return out
}

func (o OIDCProviders) Clone() OIDCProviders {
	out := o
	if o.Providers != nil {
		out.Providers = make([]OIDCProvider, len(o.Providers))
		copy(out.Providers, o.Providers)
	}
	return out
}

func (t TelephonyProvider) Clone() TelephonyProvider {
	out := t
	out.Properties = cloneStringMap(t.Properties)
	return out
}

func (p ParamsByPage) Clone() ParamsByPage {
	if p == nil {
		return nil
	}
	out := make(ParamsByPage, len(p))
	for page, params := range p {
		out[page] = cloneStringMap(params)
	}
	return out
}

func (e ElementsByType) Clone() ElementsByType {
	if e == nil {
		return nil
	}
	out := make(ElementsByType, len(e))
	for mt, elems := range e {
		out[mt] = cloneStringMap(elems)
	}
	return out
}

// Clone returns a deep copy of the per-app message element set.
func (m AppMessageElement) Clone() AppMessageElement {
	out := m
	if m.MessageTypeMessageElements != nil {
		out.MessageTypeMessageElements = make(map[string]MessageTypeElements, len(m.MessageTypeMessageElements))
		for mt, elems := range m.MessageTypeMessageElements {
			out.MessageTypeMessageElements[mt] = elems.Clone()
		}
	}
	return out
}

func (m MessageTypeElements) Clone() MessageTypeElements {
	out := m
	if m.MessageElements != nil {
		out.MessageElements = make(map[string]MessageElement, len(m.MessageElements))
		for name, el := range m.MessageElements {
			out.MessageElements[name] = el
		}
	}
	if m.MessageParameters != nil {
		out.MessageParameters = make([]MessageParameter, len(m.MessageParameters))
		copy(out.MessageParameters, m.MessageParameters)
	}
	return out
}

func (t TenantAppMessageElements) Clone() TenantAppMessageElements {
	out := t
	if t.AppMessageElements != nil {
		out.AppMessageElements = make([]AppMessageElement, len(t.AppMessageElements))
		for i, a := range t.AppMessageElements {
			out.AppMessageElements[i] = a.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of a page parameter response.
func (p PageParametersResponse) Clone() PageParametersResponse {
	out := p
	if p.PageTypeParameters != nil {
		out.PageTypeParameters = make(map[string]map[string]PageParameter, len(p.PageTypeParameters))
		for page, params := range p.PageTypeParameters {
			cp := make(map[string]PageParameter, len(params))
			for name, param := range params {
				cp[name] = param
			}
			out.PageTypeParameters[page] = cp
		}
	}
	return out
}
